package repositories

import (
	"github.com/emrekoc/acadport/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          UserRepository
	SubjectRepository       SubjectRepository
	EnrollmentRepository    EnrollmentRepository
	GradeRepository         GradeRepository
	AttendanceRepository    AttendanceRepository
	ReevaluationRepository  ReevaluationRepository
	CourseContentRepository CourseContentRepository
	TokenRepository         TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(database),
		SubjectRepository:       NewSubjectRepository(database),
		EnrollmentRepository:    NewEnrollmentRepository(database),
		GradeRepository:         NewGradeRepository(database),
		AttendanceRepository:    NewAttendanceRepository(database),
		ReevaluationRepository:  NewReevaluationRepository(database),
		CourseContentRepository: NewCourseContentRepository(database),
		TokenRepository:         NewTokenRepository(database),
	}
}
