package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

const (
	MinFieldLen       = 2
	MinHandleLen      = 2
	MaxHandleLen      = 150
	MaxTitleLen       = 150
	MaxDescriptionLen = 1500
	MaxEmailLen       = 150
	MaxLinkLen        = 150
)

// Normalize case-folds a handle for uniqueness comparison. Two handles that
// normalize to the same string are the same handle.
func Normalize(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

// Handle checks the format of an already normalized handle: bounded length
// and a slug alphabet of letters, digits, hyphen and underscore.
func Handle(handle string) error {
	switch l := len(handle); {
	case l == 0:
		return errors.New("empty handle")
	case l < MinHandleLen:
		return fmt.Errorf("handle too short; min %d characters", MinHandleLen)
	case l > MaxHandleLen:
		return fmt.Errorf("handle too long; max %d characters", MaxHandleLen)
	}

	for _, r := range handle {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			continue
		}
		return fmt.Errorf("handle contains forbidden character %q", r)
	}
	return nil
}

// Title accepts an empty title; a present one has bounded length.
func Title(title string) error {
	switch l := len(title); {
	case l == 0:
		return nil
	case l < MinFieldLen:
		return fmt.Errorf("title too short; min %d characters", MinFieldLen)
	case l > MaxTitleLen:
		return fmt.Errorf("title too long; max %d characters", MaxTitleLen)
	}
	return nil
}

func Description(description string) error {
	if len(description) > MaxDescriptionLen {
		return fmt.Errorf("description too long; max %d characters", MaxDescriptionLen)
	}
	return nil
}

// Email accepts an empty address; a profile is not required to expose one.
func Email(email string) error {
	if len(email) == 0 {
		return nil
	}
	if len(email) > MaxEmailLen {
		return fmt.Errorf("email too long; max %d characters", MaxEmailLen)
	}
	_, err := mail.ParseAddress(email)
	return err
}

func Link(platform, link string) error {
	if len(platform) == 0 {
		return errors.New("social link without a platform")
	}
	if l := len(link); l < MinFieldLen {
		return fmt.Errorf("%s link too short; min %d characters", platform, MinFieldLen)
	} else if l > MaxLinkLen {
		return fmt.Errorf("%s link too long; max %d characters", platform, MaxLinkLen)
	}
	return nil
}
