package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"pmti/config"

	"github.com/go-resty/resty/v2"
)

// FirebaseUser is the subset of the identity provider's account record the
// application cares about.
type FirebaseUser struct {
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	EmailVerified bool   `json:"emailVerified"`
}

// VerifyFirebaseToken exchanges a Firebase ID token for the provider's account
// record. Verification of the token itself is delegated to the provider.
func VerifyFirebaseToken(idToken string) (*FirebaseUser, error) {
	if idToken == "" {
		return nil, fmt.Errorf("id token is required")
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", config.AppConfig.FirebaseAPIKey).
		SetBody(map[string]string{"idToken": idToken}).
		Post(config.AppConfig.FirebaseVerifyURL)
	if err != nil {
		log.Printf("Failed to reach identity provider: %v", err)
		return nil, fmt.Errorf("identity provider unreachable")
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("invalid identity token")
	}

	var lookupResp struct {
		Users []FirebaseUser `json:"users"`
	}
	if err := json.Unmarshal(resp.Body(), &lookupResp); err != nil {
		log.Printf("Failed to parse identity provider response: %v", err)
		return nil, fmt.Errorf("invalid identity provider response")
	}
	if len(lookupResp.Users) == 0 {
		return nil, fmt.Errorf("invalid identity token")
	}

	return &lookupResp.Users[0], nil
}
