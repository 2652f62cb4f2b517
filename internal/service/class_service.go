package service

import (
	"crypto/rand"
	"errors"
	"math/big"

	"eduquest_backend/internal/model"
	"eduquest_backend/internal/repository"
	"eduquest_backend/internal/util"

	"gorm.io/gorm"
)

const classCodeLength = 6

// Ambiguous characters (0/O, 1/I) left out of generated join codes.
const classCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type ClassService struct {
	ClassRepo   *repository.ClassRepository
	StudentRepo *repository.StudentRepository
}

func NewClassService(classRepo *repository.ClassRepository, studentRepo *repository.StudentRepository) *ClassService {
	return &ClassService{
		ClassRepo:   classRepo,
		StudentRepo: studentRepo,
	}
}

func (s *ClassService) CreateClass(class *model.Class) error {
	if class.Code == "" {
		code, err := s.generateCode()
		if err != nil {
			return err
		}
		class.Code = code
	} else if _, err := s.ClassRepo.FindByCode(class.Code); err == nil {
		return util.ErrCodeTaken
	}

	return s.ClassRepo.Create(class)
}

func (s *ClassService) generateCode() (string, error) {
	// Retry on the rare collision with an existing class.
	for i := 0; i < 5; i++ {
		buf := make([]byte, classCodeLength)
		for j := range buf {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(classCodeAlphabet))))
			if err != nil {
				return "", err
			}
			buf[j] = classCodeAlphabet[n.Int64()]
		}
		code := string(buf)
		if _, err := s.ClassRepo.FindByCode(code); errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
	}
	return "", util.ErrCodeTaken
}

func (s *ClassService) UpdateClass(classID, teacherID uint, updates *model.Class) (*model.Class, error) {
	class, err := s.ownedClass(classID, teacherID)
	if err != nil {
		return nil, err
	}

	class.Name = updates.Name
	class.Grade = updates.Grade
	class.SchoolYear = updates.SchoolYear

	if err := s.ClassRepo.Update(class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) DeleteClass(classID, teacherID uint) error {
	if _, err := s.ownedClass(classID, teacherID); err != nil {
		return err
	}
	return s.ClassRepo.Delete(classID)
}

func (s *ClassService) GetClass(classID, teacherID uint) (*model.Class, error) {
	return s.ownedClass(classID, teacherID)
}

func (s *ClassService) ListClasses(teacherID uint) ([]model.Class, error) {
	return s.ClassRepo.ListByTeacher(teacherID)
}

func (s *ClassService) ListRoster(classID, teacherID uint) ([]model.Student, error) {
	if _, err := s.ownedClass(classID, teacherID); err != nil {
		return nil, err
	}
	return s.StudentRepo.ListByClass(classID)
}

func (s *ClassService) AddStudent(classID, teacherID uint, nickname string) (*model.Student, error) {
	if _, err := s.ownedClass(classID, teacherID); err != nil {
		return nil, err
	}
	return s.StudentRepo.FindOrCreate(classID, nickname)
}

// GetStudent loads a roster entry after checking that the requesting
// teacher owns the class and the student belongs to it.
func (s *ClassService) GetStudent(classID, teacherID, studentID uint) (*model.Student, error) {
	if _, err := s.ownedClass(classID, teacherID); err != nil {
		return nil, err
	}

	student, err := s.StudentRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}
	if student.ClassID != classID {
		return nil, util.ErrStudentNotFound
	}
	return student, nil
}

func (s *ClassService) RemoveStudent(classID, teacherID, studentID uint) error {
	if _, err := s.ownedClass(classID, teacherID); err != nil {
		return err
	}

	student, err := s.StudentRepo.FindByID(studentID)
	if err != nil {
		return err
	}
	if student.ClassID != classID {
		return util.ErrStudentNotFound
	}

	return s.StudentRepo.Delete(studentID)
}

// ownedClass loads the class and enforces teacher ownership. Not-found and
// not-owned surface as distinct errors so the controller can answer 404
// versus 403.
func (s *ClassService) ownedClass(classID, teacherID uint) (*model.Class, error) {
	class, err := s.ClassRepo.FindByID(classID)
	if err != nil {
		return nil, err
	}
	if class.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}
	return class, nil
}
