package localhdl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	basehdl "lets_reconcile/internal/api/base/handler"
	authmodels "lets_reconcile/internal/api/auth/models"
	localdto "lets_reconcile/internal/api/local/dto"
	"lets_reconcile/internal/api/local/models"
	localsvc "lets_reconcile/internal/api/local/service"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
)

// LocalUploadHandler xử lý upload spreadsheet và tra cứu batch upload
type LocalUploadHandler struct {
	*basehdl.BaseHandler[models.LocalUpload, localdto.LocalUploadParamsInput, localdto.LocalUploadParamsInput]
	LocalUploadService   *localsvc.LocalUploadService
	LocalPositionService *localsvc.LocalPositionService
}

// NewLocalUploadHandler khởi tạo LocalUploadHandler mới
func NewLocalUploadHandler() (*LocalUploadHandler, error) {
	uploadService, err := localsvc.NewLocalUploadService()
	if err != nil {
		return nil, fmt.Errorf("failed to create local upload service: %v", err)
	}
	positionService, err := localsvc.NewLocalPositionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create local position service: %v", err)
	}
	hdl := &LocalUploadHandler{
		LocalUploadService:   uploadService,
		LocalPositionService: positionService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.LocalUpload, localdto.LocalUploadParamsInput, localdto.LocalUploadParamsInput](uploadService)
	return hdl, nil
}

// HandleUpload nhận file spreadsheet multipart cùng tham số kỳ báo cáo,
// parse sheet đầu tiên, thay toàn bộ dữ liệu payroll của bureau và ghi lại batch.
// File không đọc được thì hủy toàn bộ, không dòng nào được xử lý.
func (h *LocalUploadHandler) HandleUpload(c fiber.Ctx) error {
	params := localdto.LocalUploadParamsInput{
		BureauFips: c.FormValue("bureauFips"),
	}
	params.Month, _ = strconv.Atoi(c.FormValue("month"))
	params.Year, _ = strconv.Atoi(c.FormValue("year"))
	if err := h.ValidateInput(&params); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file upload", common.StatusBadRequest, err))
		return nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Không mở được file upload", common.StatusBadRequest, err))
		return nil
	}
	defer func() { _ = file.Close() }()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Không đọc được file upload", common.StatusBadRequest, err))
		return nil
	}

	rows, err := localsvc.ParseSpreadsheet(fileBytes, params.BureauFips)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if maxRows := global.MongoDB_ServerConfig.Upload_MaxRows; len(rows) > maxRows {
		h.HandleResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("File có %d dòng, vượt quá giới hạn %d dòng", len(rows), maxRows),
			common.StatusBadRequest,
			nil,
		))
		return nil
	}

	valid, invalid := models.SplitValid(rows)

	// Ghi batch trước để các dòng insert mang uploadId
	upload := models.LocalUpload{
		BureauFips:  params.BureauFips,
		FileName:    fileHeader.Filename,
		Month:       params.Month,
		Year:        params.Year,
		TotalRows:   len(rows),
		ValidRows:   len(valid),
		InvalidRows: len(invalid),
		Processed:   false,
	}
	if user, ok := c.Locals("user").(authmodels.User); ok {
		upload.UploadedBy = user.ID
	}

	createdUpload, err := h.LocalUploadService.InsertOne(c.Context(), upload)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	for i := range valid {
		valid[i].UploadID = createdUpload.ID
	}
	if err := h.LocalPositionService.ReplaceForFips(c.Context(), params.BureauFips, valid); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"bureau_fips": params.BureauFips,
		"upload_id":   createdUpload.ID.Hex(),
		"total_rows":  len(rows),
		"valid_rows":  len(valid),
	}).Info("HandleUpload: Upload spreadsheet thành công")

	h.HandleResponse(c, localdto.LocalUploadResult{
		UploadID:    createdUpload.ID.Hex(),
		BureauFips:  params.BureauFips,
		FileName:    fileHeader.Filename,
		TotalRows:   len(rows),
		ValidRows:   len(valid),
		InvalidRows: len(invalid),
	}, nil)
	return nil
}
