// Package certificationsvc chứa service cho luồng chứng nhận hai bước.
package certificationsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "lets_reconcile/internal/api/base/service"
	certificationdto "lets_reconcile/internal/api/certification/dto"
	"lets_reconcile/internal/api/certification/models"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
	"lets_reconcile/internal/utility"
)

// CertificationService service quản lý chứng nhận theo kỳ
type CertificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Certification]
}

// NewCertificationService tạo mới CertificationService
func NewCertificationService() (*CertificationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Certifications)
	if !exist {
		return nil, fmt.Errorf("failed to get certifications collection: %v", common.ErrNotFound)
	}
	return &CertificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Certification](coll),
	}, nil
}

// periodFilter filter theo khóa kỳ của chứng nhận
func periodFilter(fips string, month, year int) bson.M {
	return bson.M{"bureauFips": fips, "month": month, "year": year}
}

// Load lấy chứng nhận của một kỳ. Kỳ chưa có chứng nhận trả về bản nháp
// in-memory với giá trị mặc định, bản nháp chỉ được lưu khi ký thành công.
func (s *CertificationService) Load(ctx context.Context, fips string, month, year int, localityName string) (models.Certification, error) {
	cert, err := s.FindOne(ctx, periodFilter(fips, month, year), nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.NewDraft(fips, month, year, localityName), nil
		}
		return models.Certification{}, err
	}
	return cert, nil
}

// SubmitPreparer thực hiện bước ký của người lập báo cáo. Mọi kiểm tra
// chạy trước khi đụng tới store, input không hợp lệ không sinh ra bản ghi.
func (s *CertificationService) SubmitPreparer(ctx context.Context, input *certificationdto.CertificationSubmitInput) (models.Certification, error) {
	var zero models.Certification

	cert, err := s.Load(ctx, input.BureauFips, input.Month, input.Year, input.LocalityName)
	if err != nil {
		return zero, err
	}

	if input.LocalityName != "" {
		cert.LocalityName = input.LocalityName
	}
	cert.CertifiedCycle = input.CertifiedCycle
	cert.CertifyAccurate = input.CertifyAccurate
	cert.CertifyException = input.CertifyException
	cert.AdminPrintName = input.AdminPrintName

	if err := cert.ValidateSubmit(); err != nil {
		return zero, err
	}

	cert.PreparerSigned = true
	cert.PreparerSignedAt = time.Now().UnixMilli()
	cert.State = models.StateSubmitted

	saved, err := s.upsertForPeriod(ctx, cert)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"bureau_fips": saved.BureauFips,
		"month":       saved.Month,
		"year":        saved.Year,
	}).Info("SubmitPreparer: Người lập báo cáo đã ký chứng nhận")
	return saved, nil
}

// DirectorDecide thực hiện bước duyệt của giám đốc. Kỳ chưa được người lập
// ký thì không có gì để duyệt.
func (s *CertificationService) DirectorDecide(ctx context.Context, input *certificationdto.CertificationDecideInput) (models.Certification, error) {
	var zero models.Certification

	cert, err := s.FindOne(ctx, periodFilter(input.BureauFips, input.Month, input.Year), nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.NewError(common.ErrCodeBusinessState,
				"Người lập báo cáo chưa ký chứng nhận", common.StatusBadRequest, nil)
		}
		return zero, err
	}

	if err := cert.ApplyDirectorDecision(input.DirectorPrintName, input.DirectorComment, input.Approval, time.Now().UnixMilli()); err != nil {
		return zero, err
	}

	saved, err := s.upsertForPeriod(ctx, cert)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"bureau_fips": saved.BureauFips,
		"month":       saved.Month,
		"year":        saved.Year,
		"approval":    saved.DirectorApproval,
	}).Info("DirectorDecide: Giám đốc đã quyết định chứng nhận")
	return saved, nil
}

// upsertForPeriod lưu chứng nhận theo khóa kỳ, giữ nguyên _id của document cũ
func (s *CertificationService) upsertForPeriod(ctx context.Context, cert models.Certification) (models.Certification, error) {
	data, err := utility.ToMap(cert)
	if err != nil {
		return models.Certification{}, common.ErrInvalidFormat
	}
	delete(data, "id")
	delete(data, "_id")
	return s.Upsert(ctx, periodFilter(cert.BureauFips, cert.Month, cert.Year), data)
}
