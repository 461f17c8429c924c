// Package certificationdto chứa các cấu trúc input cho domain certification.
package certificationdto

// CertificationSubmitInput input ký chứng nhận của người lập báo cáo
type CertificationSubmitInput struct {
	BureauFips       string `json:"bureauFips" validate:"required,fips"`
	Month            int    `json:"month" validate:"report_month"`
	Year             int    `json:"year" validate:"min=2000,max=2100"`
	LocalityName     string `json:"localityName"`
	CertifiedCycle   string `json:"certifiedCycle"`
	CertifyAccurate  bool   `json:"certifyAccurate"`
	CertifyException bool   `json:"certifyException"`
	AdminPrintName   string `json:"adminPrintName"`
}

// CertificationDecideInput input quyết định của giám đốc
type CertificationDecideInput struct {
	BureauFips        string `json:"bureauFips" validate:"required,fips"`
	Month             int    `json:"month" validate:"report_month"`
	Year              int    `json:"year" validate:"min=2000,max=2100"`
	DirectorPrintName string `json:"directorPrintName" validate:"required"`
	DirectorComment   string `json:"directorComment"`
	Approval          string `json:"approval" validate:"required,oneof=approved rejected"`
}

// CertificationCreateInput input tạo chứng nhận qua CRUD
type CertificationCreateInput struct {
	BureauFips   string `json:"bureauFips" validate:"required,fips"`
	Month        int    `json:"month" validate:"report_month"`
	Year         int    `json:"year" validate:"min=2000,max=2100"`
	LocalityName string `json:"localityName"`
}

// CertificationUpdateInput input cập nhật chứng nhận qua CRUD
type CertificationUpdateInput struct {
	LocalityName   *string `json:"localityName,omitempty"`
	CertifiedCycle *string `json:"certifiedCycle,omitempty"`
}
