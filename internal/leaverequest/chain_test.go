package leaverequest_test

import (
	"testing"

	"go-hradmin/internal/leaverequest"
	leaverequesterrors "go-hradmin/internal/leaverequest/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildApprovalChain(t *testing.T) {
	submitter := uuid.New()

	t.Run("success assigns orders in input sequence", func(t *testing.T) {
		first := uuid.New()
		second := uuid.New()
		third := uuid.New()

		chain, err := leaverequest.BuildApprovalChain(submitter, []string{
			first.String(), second.String(), third.String(),
		})

		assert.NoError(t, err)
		assert.Len(t, chain, 3)
		assert.Equal(t, 1, chain[0].Order)
		assert.Equal(t, first, chain[0].ApproverEmployeeID)
		assert.Equal(t, 2, chain[1].Order)
		assert.Equal(t, second, chain[1].ApproverEmployeeID)
		assert.Equal(t, 3, chain[2].Order)
		assert.Equal(t, third, chain[2].ApproverEmployeeID)
		for _, step := range chain {
			assert.Equal(t, leaverequest.ApprovalPending, step.Status)
		}
	})

	t.Run("negative empty approver list", func(t *testing.T) {
		_, err := leaverequest.BuildApprovalChain(submitter, nil)
		assert.ErrorIs(t, err, leaverequesterrors.ErrEmptyApproverList)
	})

	t.Run("negative malformed approver id", func(t *testing.T) {
		_, err := leaverequest.BuildApprovalChain(submitter, []string{"not-a-uuid"})
		assert.ErrorIs(t, err, leaverequesterrors.ErrInvalidActorID)
	})

	t.Run("negative submitter in own chain", func(t *testing.T) {
		_, err := leaverequest.BuildApprovalChain(submitter, []string{
			uuid.New().String(), submitter.String(),
		})
		assert.ErrorIs(t, err, leaverequesterrors.ErrSelfApproval)
	})

	t.Run("negative duplicate approver", func(t *testing.T) {
		dup := uuid.New()
		_, err := leaverequest.BuildApprovalChain(submitter, []string{
			dup.String(), uuid.New().String(), dup.String(),
		})
		assert.ErrorIs(t, err, leaverequesterrors.ErrDuplicateApprover)
	})
}
