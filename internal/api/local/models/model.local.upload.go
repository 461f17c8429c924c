package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalUpload là một batch upload spreadsheet của một bureau theo kỳ báo cáo.
// Processed = false nghĩa là worker chưa tính lại discrepancy report cho batch này.
type LocalUpload struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BureauFips  string             `json:"bureauFips" bson:"bureauFips" index:"single:1" validate:"required,fips"`
	FileName    string             `json:"fileName" bson:"fileName,omitempty"`
	Month       int                `json:"month" bson:"month" validate:"report_month"`
	Year        int                `json:"year" bson:"year"`
	TotalRows   int                `json:"totalRows" bson:"totalRows"`
	ValidRows   int                `json:"validRows" bson:"validRows"`
	InvalidRows int                `json:"invalidRows" bson:"invalidRows"`
	Processed   bool               `json:"processed" bson:"processed" index:"single:1"`
	UploadedBy  primitive.ObjectID `json:"uploadedBy" bson:"uploadedBy,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
