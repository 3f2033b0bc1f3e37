package auth

import (
	"context"
	"sync"

	authpkg "github.com/nestling-app/nestling-backend/internal/auth"
	"github.com/nestling-app/nestling-backend/internal/domain"
)

var _ parentRepo = &parentRepoMock{}

type parentRepoMock struct {
	CreateFunc     func(ctx context.Context, p domain.Parent) (domain.Parent, error)
	GetByIDFunc    func(ctx context.Context, id string) (domain.Parent, error)
	GetByEmailFunc func(ctx context.Context, email string) (domain.Parent, error)

	calls struct {
		Create []struct {
			P domain.Parent
		}
		GetByID []struct {
			ID string
		}
		GetByEmail []struct {
			Email string
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockGetByEmail sync.RWMutex
}

func (mock *parentRepoMock) Create(ctx context.Context, p domain.Parent) (domain.Parent, error) {
	if mock.CreateFunc == nil {
		panic("parentRepoMock.CreateFunc: method is nil but parentRepo.Create was just called")
	}
	callInfo := struct{ P domain.Parent }{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *parentRepoMock) CreateCalls() []struct{ P domain.Parent } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *parentRepoMock) GetByID(ctx context.Context, id string) (domain.Parent, error) {
	if mock.GetByIDFunc == nil {
		panic("parentRepoMock.GetByIDFunc: method is nil but parentRepo.GetByID was just called")
	}
	callInfo := struct{ ID string }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *parentRepoMock) GetByIDCalls() []struct{ ID string } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *parentRepoMock) GetByEmail(ctx context.Context, email string) (domain.Parent, error) {
	if mock.GetByEmailFunc == nil {
		panic("parentRepoMock.GetByEmailFunc: method is nil but parentRepo.GetByEmail was just called")
	}
	callInfo := struct{ Email string }{Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *parentRepoMock) GetByEmailCalls() []struct{ Email string } {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateAccessTokenFunc func(parentID string, signInMethod string) (string, error)
	ValidateAccessTokenFunc func(tokenString string) (string, string, error)

	calls struct {
		GenerateAccessToken []struct {
			ParentID     string
			SignInMethod string
		}
		ValidateAccessToken []struct {
			TokenString string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *tokenManagerMock) GenerateAccessToken(parentID string, signInMethod string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenManagerMock.GenerateAccessTokenFunc: method is nil but tokenManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		ParentID     string
		SignInMethod string
	}{ParentID: parentID, SignInMethod: signInMethod}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(parentID, signInMethod)
}

func (mock *tokenManagerMock) GenerateAccessTokenCalls() []struct {
	ParentID     string
	SignInMethod string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *tokenManagerMock) ValidateAccessToken(tokenString string) (string, string, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenManagerMock.ValidateAccessTokenFunc: method is nil but tokenManager.ValidateAccessToken was just called")
	}
	callInfo := struct{ TokenString string }{TokenString: tokenString}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(tokenString)
}

func (mock *tokenManagerMock) ValidateAccessTokenCalls() []struct{ TokenString string } {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}

var _ codeVerifier = &codeVerifierMock{}

type codeVerifierMock struct {
	VerifyCodeFunc func(ctx context.Context, code string) (*authpkg.ProviderIdentity, error)

	calls struct {
		VerifyCode []struct {
			Code string
		}
	}
	lockVerifyCode sync.RWMutex
}

func (mock *codeVerifierMock) VerifyCode(ctx context.Context, code string) (*authpkg.ProviderIdentity, error) {
	if mock.VerifyCodeFunc == nil {
		panic("codeVerifierMock.VerifyCodeFunc: method is nil but codeVerifier.VerifyCode was just called")
	}
	callInfo := struct{ Code string }{Code: code}
	mock.lockVerifyCode.Lock()
	mock.calls.VerifyCode = append(mock.calls.VerifyCode, callInfo)
	mock.lockVerifyCode.Unlock()
	return mock.VerifyCodeFunc(ctx, code)
}

func (mock *codeVerifierMock) VerifyCodeCalls() []struct{ Code string } {
	mock.lockVerifyCode.RLock()
	calls := mock.calls.VerifyCode
	mock.lockVerifyCode.RUnlock()
	return calls
}
