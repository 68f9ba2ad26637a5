package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"userhub/internal/auth"
	apperrors "userhub/internal/errors"
	"userhub/internal/model"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.NewPasswordHasher().Hash(password)
	assert.NoError(t, err)
	return hash
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*testing.T, *MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "ann@x.com",
			password: "Secr3t!",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(&model.User{
					ID:           1,
					Email:        "ann@x.com",
					PasswordHash: hashOf(t, "Secr3t!"),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "Secr3t!",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "ann@x.com",
			password: "wrong",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(&model.User{
					ID:           1,
					Email:        "ann@x.com",
					PasswordHash: hashOf(t, "Secr3t!"),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(t, mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, auth.NewPasswordHasher(), jwtService, nil)

			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				// Unknown email and wrong password return the very same error.
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				// The token's subject resolves back to the stored user id.
				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, uint(1), claims.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	dbErr := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, dbErr)

	svc := NewAuthService(mockRepo, auth.NewPasswordHasher(), auth.NewJWTService("test-secret"), nil)
	token, err := svc.Login(context.Background(), "ann@x.com", "Secr3t!")

	// A store outage is not a credential failure; it must map to a 5xx,
	// not leak back as 401 invalid credentials.
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, token)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name          string
		old           string
		new           string
		confirm       string
		setupMock     func(*testing.T, *MockUserRepository)
		expectedError error
	}{
		{
			name:          "old password missing",
			old:           "",
			new:           "New1234",
			confirm:       "New1234",
			setupMock:     func(t *testing.T, m *MockUserRepository) {},
			expectedError: apperrors.ErrPasswordsRequired,
		},
		{
			name:          "new password missing",
			old:           "Secr3t!",
			new:           "",
			confirm:       "New1234",
			setupMock:     func(t *testing.T, m *MockUserRepository) {},
			expectedError: apperrors.ErrPasswordsRequired,
		},
		{
			name:          "confirm missing",
			old:           "Secr3t!",
			new:           "New1234",
			confirm:       "",
			setupMock:     func(t *testing.T, m *MockUserRepository) {},
			expectedError: apperrors.ErrConfirmRequired,
		},
		{
			name:    "old password incorrect",
			old:     "wrong",
			new:     "New1234",
			confirm: "New1234",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:           1,
					PasswordHash: hashOf(t, "Secr3t!"),
				}, nil)
			},
			expectedError: apperrors.ErrOldPasswordIncorrect,
		},
		{
			name:    "new and confirm differ",
			old:     "Secr3t!",
			new:     "New1234",
			confirm: "Other99",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:           1,
					PasswordHash: hashOf(t, "Secr3t!"),
				}, nil)
			},
			expectedError: apperrors.ErrPasswordMismatch,
		},
		{
			name:    "successful change",
			old:     "Secr3t!",
			new:     "New1234",
			confirm: "New1234",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:           1,
					PasswordHash: hashOf(t, "Secr3t!"),
				}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(t, mockRepo)

			hasher := auth.NewPasswordHasher()
			svc := NewAuthService(mockRepo, hasher, auth.NewJWTService("test-secret"), nil)

			err := svc.ChangePassword(context.Background(), 1, tt.old, tt.new, tt.confirm)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)

				// The persisted hash verifies the new password, not the old one.
				updated := mockRepo.Calls[len(mockRepo.Calls)-1].Arguments.Get(1).(*model.User)
				assert.True(t, hasher.Verify("New1234", updated.PasswordHash))
				assert.False(t, hasher.Verify("Secr3t!", updated.PasswordHash))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginAfterChangePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	hasher := auth.NewPasswordHasher()
	user := &model.User{ID: 1, Email: "ann@x.com", PasswordHash: hashOf(t, "Secr3t!")}

	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
	mockRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(user, nil)
	mockRepo.On("Update", mock.Anything, user).Return(nil)

	svc := NewAuthService(mockRepo, hasher, auth.NewJWTService("test-secret"), nil)

	assert.NoError(t, svc.ChangePassword(context.Background(), 1, "Secr3t!", "New1234", "New1234"))

	// Old password no longer logs in, the new one does.
	_, err := svc.Login(context.Background(), "ann@x.com", "Secr3t!")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	token, err := svc.Login(context.Background(), "ann@x.com", "New1234")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}
