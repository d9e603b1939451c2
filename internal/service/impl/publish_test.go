package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/namecard/internal/domain"
	"github.com/sidereusnuntius/namecard/internal/mocks"
	"github.com/sidereusnuntius/namecard/internal/service"
	"github.com/sidereusnuntius/namecard/internal/storage"
	"github.com/sidereusnuntius/namecard/internal/storage/blobstore"
	"go.uber.org/mock/gomock"
)

func TestPublishAndResolve(t *testing.T) {
	avatar := []byte("GIF89a not really a gif")
	links := []domain.SocialLink{
		{Platform: domain.PlatformGithub, URL: "https://github.com/alice"},
	}

	receipt, err := svc.Publish(ctx, "0xa11ce", domain.Submission{
		Handle:      "alice",
		Title:       "Engineer",
		Description: "builds registries",
		Email:       "alice@example.com",
		Links:       links,
		AvatarBytes: avatar,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if receipt.Version != 1 {
		t.Errorf("expected version 1, got %d", receipt.Version)
	}
	if got := receipt.PublicURL.String(); got != "https://cards.test/alice.html" {
		t.Errorf("unexpected public url: %s", got)
	}

	entry, err := svc.Resolve(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if entry.Owner != "0xa11ce" {
		t.Errorf("expected owner 0xa11ce, got %s", entry.Owner)
	}
	if entry.Record.Title != "Engineer" {
		t.Errorf("expected title Engineer, got %s", entry.Record.Title)
	}
	if entry.Record.AvatarRef != blobstore.Digest(avatar) {
		t.Errorf("avatar reference does not match the content digest")
	}
	if diff := cmp.Diff(links, entry.Record.Links); diff != "" {
		t.Error(diff)
	}

	content, meta, err := svc.Avatar(ctx, entry.Record.AvatarRef)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(content, avatar) {
		t.Error("avatar bytes do not round trip")
	}
	if meta.SizeBytes != int64(len(avatar)) {
		t.Errorf("expected size %d, got %d", len(avatar), meta.SizeBytes)
	}

	// Second publication appends a version; the resolver reflects it.
	receipt, err = svc.Publish(ctx, "0xa11ce", domain.Submission{
		Handle: "alice",
		Title:  "Senior Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if receipt.Version != 2 {
		t.Errorf("expected version 2, got %d", receipt.Version)
	}

	entry, err = svc.Resolve(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if entry.Record.Title != "Senior Engineer" {
		t.Errorf("expected the latest title, got %s", entry.Record.Title)
	}

	records, err := svc.History(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(records))
	}
	if records[0].Title != "Senior Engineer" || records[1].Title != "Engineer" {
		t.Error("expected history newest first")
	}
}

func TestResolveUnknown(t *testing.T) {
	cases := []struct {
		name   string
		handle string
	}{
		{"never claimed", "ghost"},
		{"malformed", "no such handle!"},
		{"empty", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Resolve(ctx, c.handle)
			if !errors.Is(err, service.ErrNotFound) {
				t.Errorf("expected %q, got %q", service.ErrNotFound, err)
			}
		})
	}
}

func TestClaimWithoutProfileResolvesNotFound(t *testing.T) {
	if err := svc.Claim(ctx, "0x30", "reserved"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// Claimed but never published: not resolvable yet.
	_, err := svc.Resolve(ctx, "reserved")
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected %q, got %q", service.ErrNotFound, err)
	}
	if _, err = svc.History(ctx, "reserved"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected %q, got %q", service.ErrNotFound, err)
	}

	// The claim itself still holds.
	owner, err := svc.OwnerOf(ctx, "reserved")
	if err != nil || owner != "0x30" {
		t.Errorf("expected owner 0x30, got %s (%s)", owner, err)
	}
}

func TestPublishTakenHandle(t *testing.T) {
	if _, err := svc.Publish(ctx, "0x31", domain.Submission{Handle: "henry", Title: "first"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err := svc.Publish(ctx, "0x32", domain.Submission{Handle: "henry", Title: "usurper"})
	if !errors.Is(err, service.ErrHandleTaken) {
		t.Errorf("expected %q, got %q", service.ErrHandleTaken, err)
	}

	entry, err := svc.Resolve(ctx, "henry")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if entry.Record.Title != "first" {
		t.Errorf("losing publication leaked into the record: %s", entry.Record.Title)
	}
}

func TestPublishSecondHandle(t *testing.T) {
	if _, err := svc.Publish(ctx, "0x33", domain.Submission{Handle: "iris"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err := svc.Publish(ctx, "0x33", domain.Submission{Handle: "iris2"})
	if !errors.Is(err, service.ErrAlreadyClaimed) {
		t.Errorf("expected %q, got %q", service.ErrAlreadyClaimed, err)
	}
}

func TestPublishValidation(t *testing.T) {
	cases := []struct {
		name string
		sub  domain.Submission
		err  error
	}{
		{
			"handle over the bound",
			domain.Submission{Handle: strings.Repeat("a", 151)},
			service.ErrInvalidHandle,
		},
		{
			"description at the bound",
			domain.Submission{Handle: "val-ok", Description: strings.Repeat("x", 1500)},
			nil,
		},
		{
			"description over the bound",
			domain.Submission{Handle: "val-bad", Description: strings.Repeat("x", 1501)},
			service.ErrValidation,
		},
		{
			"bad email",
			domain.Submission{Handle: "val-mail", Email: "nope"},
			service.ErrValidation,
		},
		{
			"link without platform",
			domain.Submission{Handle: "val-link", Links: []domain.SocialLink{{URL: "https://x.com/a"}}},
			service.ErrValidation,
		},
	}

	for i, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			identity := "0x4" + string(rune('0'+i))
			_, err := svc.Publish(ctx, identity, c.sub)
			if c.err == nil && err != nil {
				t.Errorf("unexpected error: %s", err)
			} else if c.err != nil && !errors.Is(err, c.err) {
				t.Errorf("expected %q, got %q", c.err, err)
			}
		})
	}
}

func TestUpdateProfileNonOwner(t *testing.T) {
	if _, err := svc.Publish(ctx, "0x50", domain.Submission{Handle: "judy", Title: "mine"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err := svc.UpdateProfile(ctx, "judy", "0x51", domain.Submission{Title: "stolen"})
	if !errors.Is(err, service.ErrNotOwner) {
		t.Errorf("expected %q, got %q", service.ErrNotOwner, err)
	}

	entry, err := svc.Resolve(ctx, "judy")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if entry.Record.Title != "mine" || entry.Record.Version != 1 {
		t.Errorf("rejected update changed the record: %+v", entry.Record)
	}
}

func TestUpdateProfileUnknownHandle(t *testing.T) {
	_, err := svc.UpdateProfile(ctx, "nosuch", "0x52", domain.Submission{})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected %q, got %q", service.ErrNotFound, err)
	}
}

func TestPublishAvatarFailureLeavesRegistryUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	store.EXPECT().Put(gomock.Any()).Return("", storage.ErrInternal)

	broken := newServiceWith(store)
	_, err := broken.Publish(ctx, "0x60", domain.Submission{
		Handle:      "unlucky",
		AvatarBytes: []byte{1, 2, 3},
	})
	if !errors.Is(err, storage.ErrInternal) {
		t.Fatalf("expected %q, got %q", storage.ErrInternal, err)
	}

	// The blob write failed before any registry mutation.
	if _, err = svc.OwnerOf(ctx, "unlucky"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected %q, got %q", service.ErrNotFound, err)
	}
}

func TestPublishOversizedAvatar(t *testing.T) {
	oversized := bytes.Repeat([]byte{1}, int(appState.Config.MaxBlobBytes)+1)
	_, err := svc.Publish(ctx, "0x61", domain.Submission{
		Handle:      "bigpic",
		AvatarBytes: oversized,
	})
	if !errors.Is(err, storage.ErrTooLarge) {
		t.Fatalf("expected %q, got %q", storage.ErrTooLarge, err)
	}
	if _, err = svc.OwnerOf(ctx, "bigpic"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected %q, got %q", service.ErrNotFound, err)
	}
}

func TestAutofill(t *testing.T) {
	// A fresh wallet gets demo fields and no handle.
	sub, err := svc.Autofill(ctx, "0x70")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if sub.Handle != "" {
		t.Errorf("expected no handle for a fresh wallet, got %s", sub.Handle)
	}
	if sub.Title == "" {
		t.Error("expected demo fields for a fresh wallet")
	}

	if _, err = svc.Publish(ctx, "0x70", domain.Submission{Handle: "kate", Title: "Editor"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// A returning wallet gets its current profile back.
	sub, err = svc.Autofill(ctx, "0x70")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if sub.Handle != "kate" || sub.Title != "Editor" {
		t.Errorf("expected the current profile, got %+v", sub)
	}
}
