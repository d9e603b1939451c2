package domain

import "net/url"

const (
	PlatformX         = "x"
	PlatformInstagram = "instagram"
	PlatformGithub    = "github"
	PlatformLinkedin  = "linkedin"
)

type SocialLink struct {
	Platform string
	URL      string
}

type ProfileCore struct {
	Title       string
	Description string
	Email       string
	// AvatarRef is the content digest of the avatar blob, empty if the
	// profile has no avatar.
	AvatarRef string
}

// ProfileRecord is one immutable version of the payload bound to a handle.
// Versions start at 1 and only ever grow; no version is rewritten in place.
type ProfileRecord struct {
	ProfileCore
	Handle  string
	Version int64
	Links   []SocialLink
	Created int64
}

// PublicationEntry is the materialized artifact served at the public page:
// the latest committed profile version plus the owning identity and the
// resolvable URL.
type PublicationEntry struct {
	Record    ProfileRecord
	Owner     Identity
	PublicURL *url.URL
}

// Submission is what the form layer hands to the publication pipeline.
type Submission struct {
	Handle      string
	Title       string
	Description string
	Email       string
	Links       []SocialLink
	AvatarBytes []byte
}

// Receipt reports a committed publication back to the submitter.
type Receipt struct {
	Handle    string
	Version   int64
	PublicURL *url.URL
}
