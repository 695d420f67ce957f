package services

import (
	"context"
	"sort"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. They enforce the
// same uniqueness rules the database constraints do.

type pairKey struct {
	studentID int64
	subjectID int64
}

type mockSubjectRepo struct {
	subjects map[int64]*models.Subject
	nextID   int64
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[int64]*models.Subject), nextID: 1}
}

func (m *mockSubjectRepo) add(name, code string, credits int, slot string, facultyID *int64) *models.Subject {
	subject := &models.Subject{
		ID:        m.nextID,
		Name:      name,
		Code:      code,
		Credits:   credits,
		Slot:      slot,
		FacultyID: facultyID,
	}
	m.subjects[subject.ID] = subject
	m.nextID++
	return subject
}

func (m *mockSubjectRepo) Create(ctx context.Context, subject *models.Subject) error {
	for _, existing := range m.subjects {
		if existing.Code == subject.Code {
			return apperrors.ErrSubjectAlreadyExists
		}
	}
	subject.ID = m.nextID
	m.subjects[subject.ID] = subject
	m.nextID++
	return nil
}

func (m *mockSubjectRepo) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject, ok := m.subjects[id]
	if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subject, nil
}

func (m *mockSubjectRepo) GetByIDs(ctx context.Context, ids []int64) ([]*models.Subject, error) {
	var subjects []*models.Subject
	for _, id := range ids {
		if subject, ok := m.subjects[id]; ok {
			subjects = append(subjects, subject)
		}
	}
	return subjects, nil
}

func (m *mockSubjectRepo) GetAll(ctx context.Context) ([]*models.Subject, error) {
	subjects := make([]*models.Subject, 0, len(m.subjects))
	for _, subject := range m.subjects {
		subjects = append(subjects, subject)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects, nil
}

type mockEnrollmentRepo struct {
	enrollments []*models.Enrollment
	nextID      int64
	// conflictOnCreate simulates a concurrent duplicate insert losing the
	// race at the unique constraint.
	conflictOnCreate bool
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{nextID: 1}
}

func (m *mockEnrollmentRepo) add(studentID int64, subject *models.Subject) *models.Enrollment {
	enrollment := &models.Enrollment{
		ID:        m.nextID,
		StudentID: studentID,
		SubjectID: subject.ID,
		FacultyID: subject.FacultyID,
		Subject:   subject,
	}
	m.enrollments = append(m.enrollments, enrollment)
	m.nextID++
	return enrollment
}

func (m *mockEnrollmentRepo) CreateBatch(ctx context.Context, enrollments []*models.Enrollment) error {
	if m.conflictOnCreate {
		return apperrors.ErrConflict
	}
	for _, enrollment := range enrollments {
		for _, existing := range m.enrollments {
			if existing.StudentID == enrollment.StudentID && existing.SubjectID == enrollment.SubjectID {
				return apperrors.ErrConflict
			}
		}
	}
	for _, enrollment := range enrollments {
		enrollment.ID = m.nextID
		m.nextID++
		m.enrollments = append(m.enrollments, enrollment)
	}
	return nil
}

func (m *mockEnrollmentRepo) GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	var result []*models.Enrollment
	for _, enrollment := range m.enrollments {
		if enrollment.StudentID == studentID {
			result = append(result, enrollment)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) GetByFaculty(ctx context.Context, facultyID int64) ([]*models.Enrollment, error) {
	var result []*models.Enrollment
	for _, enrollment := range m.enrollments {
		if enrollment.FacultyID != nil && *enrollment.FacultyID == facultyID {
			result = append(result, enrollment)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) Exists(ctx context.Context, studentID, subjectID int64) (bool, error) {
	for _, enrollment := range m.enrollments {
		if enrollment.StudentID == studentID && enrollment.SubjectID == subjectID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEnrollmentRepo) ExistsForFaculty(ctx context.Context, studentID, subjectID, facultyID int64) (bool, error) {
	for _, enrollment := range m.enrollments {
		if enrollment.StudentID == studentID && enrollment.SubjectID == subjectID &&
			enrollment.FacultyID != nil && *enrollment.FacultyID == facultyID {
			return true, nil
		}
	}
	return false, nil
}

type mockGradeRepo struct {
	grades map[pairKey]*models.Grade
	nextID int64
}

func newMockGradeRepo() *mockGradeRepo {
	return &mockGradeRepo{grades: make(map[pairKey]*models.Grade), nextID: 1}
}

func (m *mockGradeRepo) Create(ctx context.Context, grade *models.Grade) error {
	key := pairKey{grade.StudentID, grade.SubjectID}
	if _, ok := m.grades[key]; ok {
		return apperrors.ErrConflict
	}
	grade.ID = m.nextID
	m.nextID++
	m.grades[key] = grade
	return nil
}

func (m *mockGradeRepo) Update(ctx context.Context, grade *models.Grade) error {
	key := pairKey{grade.StudentID, grade.SubjectID}
	if _, ok := m.grades[key]; !ok {
		return apperrors.ErrGradeNotFound
	}
	m.grades[key] = grade
	return nil
}

func (m *mockGradeRepo) GetByStudentAndSubject(ctx context.Context, studentID, subjectID int64) (*models.Grade, error) {
	grade, ok := m.grades[pairKey{studentID, subjectID}]
	if !ok {
		return nil, nil
	}
	copied := *grade
	return &copied, nil
}

func (m *mockGradeRepo) GetByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	var result []*models.Grade
	for _, grade := range m.grades {
		if grade.StudentID == studentID {
			result = append(result, grade)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockGradeRepo) FinalizeBySubject(ctx context.Context, subjectID int64) (int64, error) {
	var updated int64
	for _, grade := range m.grades {
		if grade.SubjectID == subjectID {
			grade.IsFinal = true
			grade.ReevaluationAllowed = false
			updated++
		}
	}
	return updated, nil
}

type mockReevaluationRepo struct {
	requests map[int64]*models.ReevaluationRequest
	nextID   int64
	// gradeRepo receives the unlock side effect on approval, mirroring the
	// transactional grade update in the real repository.
	gradeRepo *mockGradeRepo
}

func newMockReevaluationRepo(gradeRepo *mockGradeRepo) *mockReevaluationRepo {
	return &mockReevaluationRepo{
		requests:  make(map[int64]*models.ReevaluationRequest),
		nextID:    1,
		gradeRepo: gradeRepo,
	}
}

func (m *mockReevaluationRepo) Create(ctx context.Context, request *models.ReevaluationRequest) error {
	request.ID = m.nextID
	request.Status = models.ReevaluationPending
	m.requests[request.ID] = request
	m.nextID++
	return nil
}

func (m *mockReevaluationRepo) GetByID(ctx context.Context, id int64) (*models.ReevaluationRequest, error) {
	request, ok := m.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return request, nil
}

func (m *mockReevaluationRepo) GetAll(ctx context.Context) ([]*models.ReevaluationRequest, error) {
	requests := make([]*models.ReevaluationRequest, 0, len(m.requests))
	for _, request := range m.requests {
		requests = append(requests, request)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests, nil
}

func (m *mockReevaluationRepo) Decide(ctx context.Context, id int64, status models.ReevaluationStatus, comment *string) (*models.ReevaluationRequest, error) {
	request, ok := m.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	request.Status = status
	request.AdminComment = comment
	if status == models.ReevaluationApproved {
		if grade, ok := m.gradeRepo.grades[pairKey{request.StudentID, request.SubjectID}]; ok {
			grade.ReevaluationAllowed = true
		}
	}
	return request, nil
}

type mockUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (m *mockUserRepo) add(email string, role models.Role, studentID *string) *models.User {
	user := &models.User{
		ID:        m.nextID,
		Email:     email,
		Role:      role,
		FullName:  email,
		StudentID: studentID,
	}
	m.users[user.ID] = user
	m.nextID++
	return user
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if user.StudentID != nil && existing.StudentID != nil && *existing.StudentID == *user.StudentID {
			return apperrors.ErrStudentIDExists
		}
	}
	user.ID = m.nextID
	m.users[user.ID] = user
	m.nextID++
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetByStudentID(ctx context.Context, studentID string) (*models.User, error) {
	for _, user := range m.users {
		if user.StudentID != nil && *user.StudentID == studentID {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, userID int64, role models.Role) error {
	user, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Role = role
	return nil
}

type mockContentRepo struct {
	contents map[int64]*models.CourseContent
	nextID   int64
}

func newMockContentRepo() *mockContentRepo {
	return &mockContentRepo{contents: make(map[int64]*models.CourseContent), nextID: 1}
}

func (m *mockContentRepo) Create(ctx context.Context, content *models.CourseContent) error {
	content.ID = m.nextID
	m.contents[content.ID] = content
	m.nextID++
	return nil
}

func (m *mockContentRepo) GetByID(ctx context.Context, id int64) (*models.CourseContent, error) {
	content, ok := m.contents[id]
	if !ok {
		return nil, apperrors.ErrContentNotFound
	}
	return content, nil
}

func (m *mockContentRepo) GetBySubject(ctx context.Context, subjectID int64) ([]*models.CourseContent, error) {
	var result []*models.CourseContent
	for _, content := range m.contents {
		if content.SubjectID == subjectID {
			result = append(result, content)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockContentRepo) Update(ctx context.Context, content *models.CourseContent) error {
	if _, ok := m.contents[content.ID]; !ok {
		return apperrors.ErrContentNotFound
	}
	m.contents[content.ID] = content
	return nil
}

func (m *mockContentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.contents[id]; !ok {
		return apperrors.ErrContentNotFound
	}
	delete(m.contents, id)
	return nil
}
