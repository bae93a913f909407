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

func TestContactAnswer_OnlyMovesPendingMessages(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewContactMessageRepository(db, newTestLogger(t))

	// SET 列按字母序: response, status, updated_at；条件带待处理前置状态
	dbMock.ExpectExec("UPDATE .contact_messages. SET .+WHERE id = \\? AND status = \\?").
		WithArgs("已为您补发", enums.MessageAnswered, sqlmock.AnyArg(), "m1", enums.MessagePending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Answer(context.Background(), db, "m1", "已为您补发")
	require.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestContactAnswer_AlreadyHandled(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewContactMessageRepository(db, newTestLogger(t))

	dbMock.ExpectExec("UPDATE .contact_messages. SET .+WHERE id = \\? AND status = \\?").
		WithArgs("重复答复", enums.MessageAnswered, sqlmock.AnyArg(), "m1", enums.MessagePending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectQuery("SELECT count\\(\\*\\) FROM .contact_messages.").
		WithArgs("m1").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	err := repo.Answer(context.Background(), db, "m1", "重复答复")
	assert.ErrorIs(t, err, myErrors.ErrStatusTerminal)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestContactReject_MissingRow(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewContactMessageRepository(db, newTestLogger(t))

	dbMock.ExpectExec("UPDATE .contact_messages. SET .status.=.+WHERE id = \\? AND status = \\?").
		WithArgs(enums.MessageRejected, sqlmock.AnyArg(), "ghost", enums.MessagePending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectQuery("SELECT count\\(\\*\\) FROM .contact_messages.").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	err := repo.Reject(context.Background(), db, "ghost")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
