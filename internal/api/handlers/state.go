package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	flowLogin    = "login"
	flowRegister = "register"
)

var errInvalidState = errors.New("invalid state format")

type statePayload struct {
	Flow string `json:"flow"`
}

// newState returns "<nonce>.<payload>". The nonce is also kept in a cookie
// so the callback can tell the state came from this browser.
func newState(flow string) (state, nonce string, err error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	nonce = base64.RawURLEncoding.EncodeToString(b)

	payload, err := json.Marshal(statePayload{Flow: flow})
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal state data: %w", err)
	}
	return nonce + "." + base64.RawURLEncoding.EncodeToString(payload), nonce, nil
}

func parseState(state string) (nonce, flow string, err error) {
	nonce, encoded, found := strings.Cut(state, ".")
	if !found || nonce == "" || strings.Contains(encoded, ".") {
		return "", "", errInvalidState
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode state payload: %w", err)
	}
	var payload statePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", "", fmt.Errorf("failed to unmarshal state JSON: %w", err)
	}
	return nonce, payload.Flow, nil
}
