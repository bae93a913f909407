package mysql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/myErrors"
)

func TestCommentUpdateStatus_OnlyMovesPendingRows(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewCommentRepository(db, newTestLogger(t))

	// UPDATE 必须带待审核前置条件，并发裁决只有一个能命中
	dbMock.ExpectExec("UPDATE .comments. SET .status.=.+WHERE id = \\? AND status = \\?").
		WithArgs(enums.ContentApproved, sqlmock.AnyArg(), "c1", enums.ContentPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), db, "c1", enums.ContentApproved)
	require.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestCommentUpdateStatus_TerminalRowLosesRace(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewCommentRepository(db, newTestLogger(t))

	// 行存在但已不在待审核: 另一次裁决先落地，本次零行命中
	dbMock.ExpectExec("UPDATE .comments. SET .status.=.+WHERE id = \\? AND status = \\?").
		WithArgs(enums.ContentRejected, sqlmock.AnyArg(), "c1", enums.ContentPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectQuery("SELECT count\\(\\*\\) FROM .comments.").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	err := repo.UpdateStatus(context.Background(), db, "c1", enums.ContentRejected)
	assert.ErrorIs(t, err, myErrors.ErrStatusTerminal)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestCommentUpdateStatus_MissingRow(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewCommentRepository(db, newTestLogger(t))

	dbMock.ExpectExec("UPDATE .comments. SET .status.=.+WHERE id = \\? AND status = \\?").
		WithArgs(enums.ContentApproved, sqlmock.AnyArg(), "ghost", enums.ContentPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectQuery("SELECT count\\(\\*\\) FROM .comments.").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	err := repo.UpdateStatus(context.Background(), db, "ghost", enums.ContentApproved)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
