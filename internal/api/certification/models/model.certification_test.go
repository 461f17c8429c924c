package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lets_reconcile/internal/common"
)

func validDraft() Certification {
	cert := NewDraft("51001", 7, 2026, "Alpha County")
	cert.CertifyAccurate = true
	cert.CertifyException = true
	cert.AdminPrintName = "Jane Admin"
	return cert
}

func TestNewDraft_Defaults(t *testing.T) {
	cert := NewDraft("51001", 7, 2026, "Alpha County")

	assert.Equal(t, StateDraft, cert.State)
	assert.Equal(t, ApprovalPending, cert.DirectorApproval)
	assert.False(t, cert.PreparerSigned)
	assert.Equal(t, "Alpha County", cert.LocalityName)
}

func TestValidateSubmit_MissingPrintName(t *testing.T) {
	cert := validDraft()
	cert.AdminPrintName = "   "

	err := cert.ValidateSubmit()
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeValidationInput.Code, customErr.Code.Code)
	// Trạng thái không được thay đổi khi validate thất bại
	assert.Equal(t, StateDraft, cert.State)
	assert.False(t, cert.PreparerSigned)
}

func TestValidateSubmit_BothFlagsRequired(t *testing.T) {
	cert := validDraft()
	cert.CertifyException = false
	assert.Error(t, cert.ValidateSubmit())

	cert = validDraft()
	cert.CertifyAccurate = false
	assert.Error(t, cert.ValidateSubmit())

	cert = validDraft()
	assert.NoError(t, cert.ValidateSubmit())
}

func TestValidateSubmit_ClosedIsTerminal(t *testing.T) {
	cert := validDraft()
	cert.State = StateClosed

	err := cert.ValidateSubmit()
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeBusinessState.Code, customErr.Code.Code)
}

func TestApplyDirectorDecision_Approve(t *testing.T) {
	cert := validDraft()
	cert.PreparerSigned = true
	cert.State = StateSubmitted

	comment := "Đã đối chiếu với hồ sơ quý 2, chấp nhận sai lệch."
	err := cert.ApplyDirectorDecision("John Director", comment, ApprovalApproved, 1755000000000)
	require.NoError(t, err)

	assert.Equal(t, StateClosed, cert.State)
	assert.Equal(t, ApprovalApproved, cert.DirectorApproval)
	assert.Equal(t, comment, cert.DirectorComment, "comment phải giữ nguyên văn")
	assert.Equal(t, int64(1755000000000), cert.DirectorSignedAt)
}

func TestApplyDirectorDecision_RequiresPreparerSignature(t *testing.T) {
	cert := validDraft()

	err := cert.ApplyDirectorDecision("John Director", "", ApprovalApproved, 1)
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeBusinessState.Code, customErr.Code.Code)
	assert.Equal(t, StateDraft, cert.State)
}

func TestApplyDirectorDecision_ClosedIsTerminal(t *testing.T) {
	cert := validDraft()
	cert.PreparerSigned = true
	cert.State = StateSubmitted
	require.NoError(t, cert.ApplyDirectorDecision("John Director", "ok", ApprovalApproved, 1))

	err := cert.ApplyDirectorDecision("John Director", "again", ApprovalRejected, 2)
	require.Error(t, err)
	assert.Equal(t, ApprovalApproved, cert.DirectorApproval, "quyết định đầu tiên không được ghi đè")
}

func TestApplyDirectorDecision_InvalidApproval(t *testing.T) {
	cert := validDraft()
	cert.PreparerSigned = true
	cert.State = StateSubmitted

	err := cert.ApplyDirectorDecision("John Director", "", "maybe", 1)
	require.Error(t, err)
	assert.Equal(t, StateSubmitted, cert.State)
}
