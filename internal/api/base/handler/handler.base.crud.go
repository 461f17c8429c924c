package basehdl

import (
	"encoding/json"

	"lets_reconcile/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// ====================================
// NHÓM 1: CÁC HANDLER INSERT
// ====================================

// HandleInsertOne xử lý request tạo mới một document.
// Body request là CreateInput (DTO), được transform sang Model trước khi insert.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleInsertOne(c fiber.Ctx) error {
	var input CreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	model, err := h.TransformCreateInputToModel(&input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.BaseService.InsertOne(c.Context(), *model)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleInsertMany xử lý request tạo mới nhiều document.
// Body request là mảng CreateInput.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleInsertMany(c fiber.Ctx) error {
	var inputs []CreateInput
	if err := h.ParseRequestBody(c, &inputs); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if len(inputs) == 0 {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Danh sách dữ liệu không được rỗng", common.StatusBadRequest, nil))
		return nil
	}

	models := make([]T, 0, len(inputs))
	for i := range inputs {
		if err := h.ValidateInput(&inputs[i]); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		model, err := h.TransformCreateInputToModel(&inputs[i])
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		models = append(models, *model)
	}

	data, err := h.BaseService.InsertMany(c.Context(), models)
	h.HandleResponse(c, data, err)
	return nil
}

// ====================================
// NHÓM 2: CÁC HANDLER FIND
// ====================================

// HandleFindOne xử lý request tìm một document theo filter từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleFindOne(c fiber.Ctx) error {
	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	rawOpts, err := h.processMongoOptions(c, true)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	opts, _ := rawOpts.(*mongoopts.FindOneOptions)

	data, err := h.BaseService.FindOne(c.Context(), filter, opts)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleFindOneById xử lý request tìm một document theo ID trên URI
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleFindOneById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}

	data, err := h.BaseService.FindOneById(c.Context(), objectID)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleFindManyByIds xử lý request tìm nhiều document theo danh sách ID.
// Body request: {"ids": ["...", "..."]}
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleFindManyByIds(c fiber.Ctx) error {
	var input struct {
		IDs []string `json:"ids" validate:"required,min=1"`
	}
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	objectIDs := make([]primitive.ObjectID, 0, len(input.IDs))
	for _, id := range input.IDs {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "ID không hợp lệ: "+id, common.StatusBadRequest, err))
			return nil
		}
		objectIDs = append(objectIDs, objectID)
	}

	data, err := h.BaseService.FindManyByIds(c.Context(), objectIDs)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleFindWithPagination xử lý request tìm nhiều document với phân trang
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleFindWithPagination(c fiber.Ctx) error {
	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	rawOpts, err := h.processMongoOptions(c, false)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	opts, _ := rawOpts.(*mongoopts.FindOptions)

	page, limit := h.ParsePagination(c)

	data, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, opts)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleFind xử lý request tìm nhiều document theo filter và options từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleFind(c fiber.Ctx) error {
	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	rawOpts, err := h.processMongoOptions(c, false)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	opts, _ := rawOpts.(*mongoopts.FindOptions)

	data, err := h.BaseService.Find(c.Context(), filter, opts)
	h.HandleResponse(c, data, err)
	return nil
}

// ====================================
// NHÓM 3: CÁC HANDLER UPDATE
// ====================================

// HandleUpdateOne xử lý request cập nhật một document theo filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleUpdateOne(c fiber.Ctx) error {
	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input UpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	updateMap, err := h.TransformUpdateInputToModel(&input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.BaseService.UpdateOne(c.Context(), filter, updateMap, nil)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleUpdateMany xử lý request cập nhật nhiều document theo filter.
// Trả về số lượng document đã được cập nhật.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleUpdateMany(c fiber.Ctx) error {
	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input UpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	updateMap, err := h.TransformUpdateInputToModel(&input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	count, err := h.BaseService.UpdateMany(c.Context(), filter, updateMap, nil)
	h.HandleResponse(c, fiber.Map{"modifiedCount": count}, err)
	return nil
}

// HandleUpdateById xử lý request cập nhật một document theo ID trên URI
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleUpdateById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}

	var input UpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	updateMap, err := h.TransformUpdateInputToModel(&input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.BaseService.UpdateById(c.Context(), objectID, updateMap)
	h.HandleResponse(c, data, err)
	return nil
}

// ====================================
// NHÓM 4: CÁC HANDLER DELETE
// ====================================

// HandleDeleteOne xử lý request xóa một document theo filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleDeleteOne(c fiber.Ctx) error {
	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.BaseService.DeleteOne(c.Context(), filter)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleDeleteMany xử lý request xóa nhiều document theo filter.
// Trả về số lượng document đã xóa.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleDeleteMany(c fiber.Ctx) error {
	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	count, err := h.BaseService.DeleteMany(c.Context(), filter)
	h.HandleResponse(c, fiber.Map{"deletedCount": count}, err)
	return nil
}

// HandleDeleteById xử lý request xóa một document theo ID trên URI
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleDeleteById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}

	err = h.BaseService.DeleteById(c.Context(), objectID)
	h.HandleResponse(c, nil, err)
	return nil
}

// ====================================
// NHÓM 5: CÁC HANDLER KHÁC
// ====================================

// HandleCountDocuments xử lý request đếm số lượng document theo filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleCountDocuments(c fiber.Ctx) error {
	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	count, err := h.BaseService.CountDocuments(c.Context(), filter)
	h.HandleResponse(c, fiber.Map{"count": count}, err)
	return nil
}

// HandleDistinct xử lý request lấy danh sách giá trị duy nhất của một trường.
// Tên trường truyền qua query param "field".
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleDistinct(c fiber.Ctx) error {
	fieldName := c.Query("field", "")
	if fieldName == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số field", common.StatusBadRequest, nil))
		return nil
	}

	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	values, err := h.BaseService.Distinct(c.Context(), fieldName, filter)
	h.HandleResponse(c, values, err)
	return nil
}

// HandleUpsert xử lý request upsert một document theo filter.
// Body request là CreateInput, filter từ query string.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleUpsert(c fiber.Ctx) error {
	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input CreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	// Upsert nhận map dữ liệu, chuyển DTO qua JSON round-trip
	raw, err := json.Marshal(&input)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
		return nil
	}
	var dataMap map[string]interface{}
	if err := json.Unmarshal(raw, &dataMap); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
		return nil
	}

	data, err := h.BaseService.Upsert(c.Context(), filter, dataMap)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleDocumentExists xử lý request kiểm tra document có tồn tại theo filter hay không
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleDocumentExists(c fiber.Ctx) error {
	filter, err := h.processFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	exists, err := h.BaseService.DocumentExists(c.Context(), filter)
	h.HandleResponse(c, fiber.Map{"exists": exists}, err)
	return nil
}
