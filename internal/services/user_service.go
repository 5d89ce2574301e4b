package services

import (
	"strings"
	"time"

	"github.com/mindwell/wellness-backend/internal/api/validate"
	"github.com/mindwell/wellness-backend/internal/auth"
	"github.com/mindwell/wellness-backend/internal/models"
	repo "github.com/mindwell/wellness-backend/internal/repository"
)

type UserService struct {
	users    repo.Users
	moods    repo.Moods
	journals repo.Journals
}

func NewUserService(users repo.Users, moods repo.Moods, journals repo.Journals) *UserService {
	return &UserService{users: users, moods: moods, journals: journals}
}

type RegisterInput struct {
	Username         string  `json:"username"`
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Phone            *string `json:"phone"`
	EmergencyContact *string `json:"emergency_contact"`
}

func (s *UserService) Register(in RegisterInput) (models.User, error) {
	if err := validate.Collect(
		validate.Required("username", in.Username),
		validate.Required("email", in.Email),
		validate.Required("password", in.Password),
		validate.MinLen("password", in.Password, 6),
		validate.Email("email", in.Email),
	); err != nil {
		return models.User{}, err
	}

	u := models.User{
		Username:         strings.TrimSpace(in.Username),
		Email:            strings.TrimSpace(in.Email),
		Role:             "user",
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Phone:            in.Phone,
		EmergencyContact: in.EmergencyContact,
	}
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}

	if taken, err := s.users.UsernameTaken(u.Username); err != nil {
		return models.User{}, err
	} else if taken {
		return models.User{}, ErrUsernameExists
	}
	if taken, err := s.users.EmailTaken(u.Email, ""); err != nil {
		return models.User{}, err
	} else if taken {
		return models.User{}, ErrEmailExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}
	u.PasswordHash = hash
	return s.users.Create(u)
}

// Login accepts a username or an email. Lookup and password failures are
// indistinguishable to the caller.
func (s *UserService) Login(login, password string) (models.User, error) {
	u, err := s.users.GetByLogin(strings.TrimSpace(login))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		return models.User{}, ErrAccountDisabled
	}
	return u, nil
}

func (s *UserService) Get(id string) (models.User, error) {
	u, err := s.users.GetByID(id)
	return u, mapNoRows(err)
}

type ProfileUpdate struct {
	Email            *string `json:"email"`
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	DateOfBirth      *string `json:"date_of_birth"`
	Phone            *string `json:"phone"`
	EmergencyContact *string `json:"emergency_contact"`
}

func (s *UserService) UpdateProfile(id string, in ProfileUpdate) (models.User, error) {
	u, err := s.users.GetByID(id)
	if err != nil {
		return models.User{}, mapNoRows(err)
	}

	if in.Email != nil {
		if err := validate.Collect(validate.Email("email", *in.Email)); err != nil {
			return models.User{}, err
		}
		if taken, err := s.users.EmailTaken(*in.Email, id); err != nil {
			return models.User{}, err
		} else if taken {
			return models.User{}, ErrEmailExists
		}
		u.Email = *in.Email
	}
	if in.FirstName != nil {
		u.FirstName = in.FirstName
	}
	if in.LastName != nil {
		u.LastName = in.LastName
	}
	if in.DateOfBirth != nil {
		d, err := models.ParseDate(*in.DateOfBirth)
		if err != nil {
			return models.User{}, validate.Errs{{Field: "date_of_birth", Msg: err.Error()}}
		}
		u.DateOfBirth = &d
	}
	if in.Phone != nil {
		u.Phone = in.Phone
	}
	if in.EmergencyContact != nil {
		u.EmergencyContact = in.EmergencyContact
	}

	if err := s.users.Update(u); err != nil {
		return models.User{}, err
	}
	return s.users.GetByID(id)
}

func (s *UserService) ChangePassword(id, current, next string) error {
	if err := validate.Collect(
		validate.Required("current_password", current),
		validate.Required("new_password", next),
		validate.MinLen("new_password", next, 6),
	); err != nil {
		return err
	}

	u, err := s.users.GetByID(id)
	if err != nil {
		return mapNoRows(err)
	}
	if err := auth.VerifyPassword(current, u.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(id, hash)
}

type UserStats struct {
	TotalMoodEntries      int `json:"total_mood_entries"`
	TotalJournalEntries   int `json:"total_journal_entries"`
	DaysSinceRegistration int `json:"days_since_registration"`
	RecentMoodEntries     int `json:"recent_mood_entries"`
	RecentJournalEntries  int `json:"recent_journal_entries"`
	AccountAgeDays        int `json:"account_age_days"`
}

func (s *UserService) Stats(id string) (UserStats, error) {
	u, err := s.users.GetByID(id)
	if err != nil {
		return UserStats{}, mapNoRows(err)
	}

	totalMoods, err := s.moods.Count(id, nil)
	if err != nil {
		return UserStats{}, err
	}
	totalJournals, err := s.journals.Count(id, nil)
	if err != nil {
		return UserStats{}, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	recentMoods, err := s.moods.Count(id, &weekAgo)
	if err != nil {
		return UserStats{}, err
	}
	recentJournals, err := s.journals.Count(id, &weekAgo)
	if err != nil {
		return UserStats{}, err
	}

	age := int(time.Since(u.CreatedAt).Hours() / 24)
	return UserStats{
		TotalMoodEntries:      totalMoods,
		TotalJournalEntries:   totalJournals,
		DaysSinceRegistration: age,
		RecentMoodEntries:     recentMoods,
		RecentJournalEntries:  recentJournals,
		AccountAgeDays:        age,
	}, nil
}

type UserExport struct {
	User           models.User           `json:"user"`
	MoodEntries    []models.MoodEntry    `json:"mood_entries"`
	JournalEntries []models.JournalEntry `json:"journal_entries"`
}

func (s *UserService) Export(id string) (UserExport, error) {
	u, err := s.users.GetByID(id)
	if err != nil {
		return UserExport{}, mapNoRows(err)
	}
	moods, err := s.moods.ListByUser(id, nil, 0, 0)
	if err != nil {
		return UserExport{}, err
	}
	journals, err := s.journals.ListAll(id)
	if err != nil {
		return UserExport{}, err
	}
	if moods == nil {
		moods = []models.MoodEntry{}
	}
	if journals == nil {
		journals = []models.JournalEntry{}
	}
	return UserExport{User: u, MoodEntries: moods, JournalEntries: journals}, nil
}

// DeleteAccount removes the user; entries cascade in the database.
func (s *UserService) DeleteAccount(id string) error {
	if _, err := s.users.GetByID(id); err != nil {
		return mapNoRows(err)
	}
	return s.users.Delete(id)
}
