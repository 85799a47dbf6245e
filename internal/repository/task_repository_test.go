package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/slack-task-bot/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskRepositoryTestSuite defines the test suite for GormTaskRepository
type TaskRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TaskRepository
}

// SetupTest runs before each test
func (suite *TaskRepositoryTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Task{}, &models.TaskAssignment{})
	suite.Require().NoError(err)

	suite.repo = NewTaskRepository(suite.db)
}

// TearDownTest runs after each test
func (suite *TaskRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskRepositoryTestSuite) newTask(channelID, title string) *models.Task {
	return &models.Task{
		ChannelID:   channelID,
		CreatedBy:   "U9",
		Title:       title,
		Description: "desc",
		Status:      models.TaskStatusOpen,
		DueDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *TaskRepositoryTestSuite) TestCreateWithAssignments_RoundTrip() {
	task := suite.newTask("C100", "Ship report")

	err := suite.repo.CreateWithAssignments(task, []string{"UA", "UB"})
	suite.Require().NoError(err)
	suite.Require().NotZero(task.ID)

	found, err := suite.repo.FindByID(task.ID, "Assignments")
	suite.Require().NoError(err)

	userIDs := make([]string, len(found.Assignments))
	for i, a := range found.Assignments {
		userIDs[i] = a.UserID
	}
	assert.ElementsMatch(suite.T(), []string{"UA", "UB"}, userIDs)
}

func (suite *TaskRepositoryTestSuite) TestCreateWithAssignments_DuplicateUserRejected() {
	task := suite.newTask("C100", "Ship report")

	// Composite primary key forbids a second (task, user) pair
	err := suite.repo.CreateWithAssignments(task, []string{"UA", "UA"})
	suite.Require().Error(err)

	var taskCount int64
	suite.db.Model(&models.Task{}).Count(&taskCount)
	assert.Equal(suite.T(), int64(0), taskCount)
}

func (suite *TaskRepositoryTestSuite) TestList_FiltersByChannel() {
	suite.Require().NoError(suite.repo.CreateWithAssignments(suite.newTask("C100", "in channel"), []string{"UA"}))
	suite.Require().NoError(suite.repo.CreateWithAssignments(suite.newTask("C200", "elsewhere"), []string{"UA"}))

	tasks, total, err := suite.repo.List(TaskFilter{ChannelID: "C100"})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), "in channel", tasks[0].Title)
}

func (suite *TaskRepositoryTestSuite) TestList_FiltersByAssignee() {
	suite.Require().NoError(suite.repo.CreateWithAssignments(suite.newTask("C100", "mine"), []string{"UA"}))
	suite.Require().NoError(suite.repo.CreateWithAssignments(suite.newTask("C100", "theirs"), []string{"UB"}))

	tasks, total, err := suite.repo.List(TaskFilter{AssignedUserID: "UA"})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), "mine", tasks[0].Title)
}

func (suite *TaskRepositoryTestSuite) TestList_Paginates() {
	for _, title := range []string{"a", "b", "c"} {
		suite.Require().NoError(suite.repo.CreateWithAssignments(suite.newTask("C100", title), []string{"UA"}))
	}

	tasks, total, err := suite.repo.List(TaskFilter{Page: 1, PageSize: 2})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), int64(3), total)
	assert.Len(suite.T(), tasks, 2)
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}

// TestCreateWithAssignments_RollsBackOnAssignmentFailure asserts at the SQL
// level that a failed assignment insert rolls back the whole unit.
func TestCreateWithAssignments_RollsBackOnAssignmentFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `tasks`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `task_assignments`").
		WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	task := &models.Task{
		ChannelID: "C100",
		CreatedBy: "U9",
		Title:     "Ship report",
		Status:    models.TaskStatusOpen,
		DueDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	err = repo.CreateWithAssignments(task, []string{"UA"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
