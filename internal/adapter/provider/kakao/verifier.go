package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nestling-app/nestling-backend/internal/auth"
)

var (
	// Made variables for testing purposes
	tokenURL    = "https://kauth.kakao.com/oauth/token"
	userinfoURL = "https://kapi.kakao.com/v2/user/me"
)

// Verifier exchanges Kakao OAuth authorization codes for account identity.
type Verifier struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewVerifier creates a Kakao OAuth verifier. Parameters come from
// config.AuthConfig: KakaoClientID, KakaoClientSecret, KakaoRedirectURI.
func NewVerifier(clientID, clientSecret, redirectURI string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "kakao_oauth"),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// userinfoResponse mirrors the shape of Kakao's /v2/user/me endpoint.
type userinfoResponse struct {
	ID      int64 `json:"id"`
	Account struct {
		Email           string `json:"email"`
		IsEmailVerified bool   `json:"is_email_verified"`
		Profile         struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// VerifyCode exchanges an authorization code for the Kakao account identity.
func (v *Verifier) VerifyCode(ctx context.Context, code string) (*auth.ProviderIdentity, error) {
	accessToken, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	userinfo, err := v.fetchUserinfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	identity := &auth.ProviderIdentity{
		ProviderID: strconv.FormatInt(userinfo.ID, 10),
		Email:      userinfo.Account.Email,
	}
	if nick := userinfo.Account.Profile.Nickname; nick != "" {
		identity.Nickname = &nick
	}
	if photo := userinfo.Account.Profile.ProfileImageURL; photo != "" {
		identity.PhotoURL = &photo
	}

	v.log.DebugContext(ctx, "kakao oauth success", slog.String("provider_id", identity.ProviderID))

	return identity, nil
}

func (v *Verifier) exchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("client_id", v.clientID)
	data.Set("client_secret", v.clientSecret)
	data.Set("redirect_uri", v.redirectURI)

	encodedData := data.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(encodedData))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Reusable body so the retry can replay the POST.
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(encodedData)), nil
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "kakao token exchange failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("oauth: kakao unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("oauth: failed to read token response")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			v.log.ErrorContext(ctx, "kakao token exchange failed",
				slog.Int("status", resp.StatusCode),
				slog.String("error", errResp.Error))

			// 400 is typically an invalid or expired code.
			if resp.StatusCode == http.StatusBadRequest {
				return "", fmt.Errorf("oauth: invalid or expired code")
			}
		}

		v.log.ErrorContext(ctx, "kakao token exchange failed", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("oauth: kakao unavailable")
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("oauth: invalid token response")
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("oauth: invalid token response")
	}

	return tokenResp.AccessToken, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*userinfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "kakao userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("oauth: failed to fetch user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "kakao userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("oauth: failed to fetch user info")
	}

	var userinfo userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&userinfo); err != nil {
		return nil, fmt.Errorf("oauth: invalid userinfo response")
	}
	if userinfo.ID == 0 {
		return nil, fmt.Errorf("oauth: invalid userinfo response")
	}

	return &userinfo, nil
}

// doWithRetry executes the request, retrying once on 5xx or network errors
// after a 500ms backoff. POST bodies must be replayable via req.GetBody.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil || (resp != nil && resp.StatusCode >= 500) {
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		resp, err = v.httpClient.Do(req)
	}

	return resp, err
}
