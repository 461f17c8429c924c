// Package models - chứng nhận báo cáo đối soát theo kỳ.
package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lets_reconcile/internal/common"
)

// Trạng thái vòng đời của một chứng nhận
const (
	// StateDraft bản nháp, chưa lưu trữ cho tới lần ký đầu tiên
	StateDraft = "draft"
	// StateSubmitted người lập báo cáo đã ký, chờ giám đốc duyệt
	StateSubmitted = "submitted"
	// StateClosed giám đốc đã quyết định, không sửa được nữa
	StateClosed = "closed"
)

// Quyết định của giám đốc
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Certification chứng nhận hai bước của một bureau cho một kỳ báo cáo:
// người lập (admin) ký xác nhận trước, giám đốc duyệt hoặc từ chối sau.
// Khi đã closed thì mọi thao tác tiếp theo đều bị từ chối.
type Certification struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BureauFips string             `json:"bureauFips" bson:"bureauFips" index:"compound:certification_fips_period_unique" validate:"required,fips"`
	Month      int                `json:"month" bson:"month" index:"compound:certification_fips_period_unique" validate:"report_month"`
	Year       int                `json:"year" bson:"year" index:"compound:certification_fips_period_unique"`

	LocalityName   string `json:"localityName" bson:"localityName"`
	CertifiedCycle string `json:"certifiedCycle" bson:"certifiedCycle"`

	// Phần của người lập báo cáo
	CertifyAccurate  bool   `json:"certifyAccurate" bson:"certifyAccurate"`
	CertifyException bool   `json:"certifyException" bson:"certifyException"`
	AdminPrintName   string `json:"adminPrintName" bson:"adminPrintName"`
	PreparerSigned   bool   `json:"preparerSigned" bson:"preparerSigned"`
	PreparerSignedAt int64  `json:"preparerSignedAt" bson:"preparerSignedAt"`

	// Phần của giám đốc
	DirectorPrintName string `json:"directorPrintName" bson:"directorPrintName"`
	DirectorComment   string `json:"directorComment" bson:"directorComment"`
	DirectorApproval  string `json:"directorApproval" bson:"directorApproval"`
	DirectorSignedAt  int64  `json:"directorSignedAt" bson:"directorSignedAt"`

	State string `json:"state" bson:"state"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// NewDraft dựng chứng nhận nháp mặc định cho một kỳ. Bản nháp không lưu
// cho tới khi người lập ký thành công lần đầu.
func NewDraft(fips string, month, year int, localityName string) Certification {
	return Certification{
		BureauFips:       fips,
		Month:            month,
		Year:             year,
		LocalityName:     localityName,
		DirectorApproval: ApprovalPending,
		State:            StateDraft,
	}
}

// ValidateSubmit kiểm tra điều kiện ký của người lập. Hàm thuần, gọi
// trước mọi thao tác lưu trữ: fail thì store không được đụng tới.
func (cert *Certification) ValidateSubmit() error {
	if cert.State == StateClosed {
		return common.NewError(common.ErrCodeBusinessState,
			"Chứng nhận đã đóng, không thể ký lại", common.StatusBadRequest, nil)
	}
	if strings.TrimSpace(cert.BureauFips) == "" {
		return common.NewError(common.ErrCodeValidationInput,
			"Thiếu mã FIPS của bureau", common.StatusBadRequest, nil)
	}
	if !cert.CertifyAccurate || !cert.CertifyException {
		return common.NewError(common.ErrCodeValidationInput,
			"Phải xác nhận cả hai điều khoản chứng nhận", common.StatusBadRequest, nil)
	}
	if strings.TrimSpace(cert.AdminPrintName) == "" {
		return common.NewError(common.ErrCodeValidationInput,
			"Thiếu họ tên người lập báo cáo", common.StatusBadRequest, nil)
	}
	return nil
}

// ApplyDirectorDecision áp quyết định của giám đốc lên chứng nhận.
// Yêu cầu người lập đã ký trước, chứng nhận closed là trạng thái cuối.
// Comment của giám đốc được giữ nguyên văn.
func (cert *Certification) ApplyDirectorDecision(printName, comment, approval string, now int64) error {
	if cert.State == StateClosed {
		return common.NewError(common.ErrCodeBusinessState,
			"Chứng nhận đã đóng, không thể quyết định lại", common.StatusBadRequest, nil)
	}
	if !cert.PreparerSigned || cert.State != StateSubmitted {
		return common.NewError(common.ErrCodeBusinessState,
			"Người lập báo cáo chưa ký chứng nhận", common.StatusBadRequest, nil)
	}
	if approval != ApprovalApproved && approval != ApprovalRejected {
		return common.NewError(common.ErrCodeValidationInput,
			"Quyết định phải là approved hoặc rejected", common.StatusBadRequest, nil)
	}
	if strings.TrimSpace(printName) == "" {
		return common.NewError(common.ErrCodeValidationInput,
			"Thiếu họ tên giám đốc", common.StatusBadRequest, nil)
	}

	cert.DirectorPrintName = printName
	cert.DirectorComment = comment
	cert.DirectorApproval = approval
	cert.DirectorSignedAt = now
	cert.State = StateClosed
	return nil
}
