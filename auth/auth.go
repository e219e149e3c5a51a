// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

// Request headers carrying credentials
const (
	HeaderAdminKey    = "X-Admin-Key"
	HeaderAlumniID    = "X-Alumni-ID"
	HeaderAlumniToken = "X-Alumni-Token"
)

// adminSubject is the HMAC message for the shared admin key
const adminSubject = "admin"

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidToken    = errors.New("invalid alumni token")
	ErrInvalidAlumniID = errors.New("invalid alumni id")
)

// Role is what a request is allowed to do.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAlumni  Role = "alumni"
	RoleStudent Role = "student"
)

// Session identifies who is making a request. AlumniID is set only for
// RoleAlumni.
type Session struct {
	Role     Role  `json:"role"`
	AlumniID int64 `json:"alumni_id,omitempty"`
}

// IsAdmin reports whether the session has admin rights
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsAlumni reports whether the session belongs to the given alumni
func (s Session) IsAlumni(id int64) bool {
	return s.Role == RoleAlumni && s.AlumniID == id
}

// CanManage reports whether the session may see or change alumni id's
// private records: admins always can, alumni only their own.
func (s Session) CanManage(id int64) bool {
	return s.IsAdmin() || s.IsAlumni(id)
}

// sign creates a deterministic, URL-safe HMAC-SHA256 key for subject
func sign(subject, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(subject))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// GenerateAdminKey creates the admin key for a deployment secret
func GenerateAdminKey(secret string) string {
	return sign(adminSubject, secret)
}

// ValidateAdminKey checks if key is the admin key for secret
func ValidateAdminKey(key, secret string) error {
	if !hmac.Equal([]byte(key), []byte(GenerateAdminKey(secret))) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateAlumniToken creates the sign-in token for one alumni
func GenerateAlumniToken(alumniID int64, secret string) string {
	return sign(strconv.FormatInt(alumniID, 10), secret)
}

// ValidateAlumniToken checks token against alumniID
func ValidateAlumniToken(alumniID int64, token, secret string) error {
	if !hmac.Equal([]byte(token), []byte(GenerateAlumniToken(alumniID, secret))) {
		return ErrInvalidToken
	}
	return nil
}

// ParseAlumniID parses a positive alumni id from a header or path value
func ParseAlumniID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidAlumniID
	}
	return id, nil
}

// Resolve turns request credentials into a session. No credentials is a
// student session; credentials that do not verify are an error.
func Resolve(adminKey, alumniID, alumniToken, secret string) (Session, error) {
	if adminKey != "" {
		if err := ValidateAdminKey(adminKey, secret); err != nil {
			return Session{}, err
		}
		return Session{Role: RoleAdmin}, nil
	}

	if alumniID != "" || alumniToken != "" {
		id, err := ParseAlumniID(alumniID)
		if err != nil {
			return Session{}, err
		}
		if err := ValidateAlumniToken(id, alumniToken, secret); err != nil {
			return Session{}, err
		}
		return Session{Role: RoleAlumni, AlumniID: id}, nil
	}

	return Session{Role: RoleStudent}, nil
}
