// model/role.go
package model

import (
	"context"
	"fmt"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
)

// LibraryLister lists the identifiers of every library that currently exists.
type LibraryLister interface {
	ListLibraryIDs(ctx context.Context) ([]string, error)
}

// Role is closed: MemberRole and AdminRole are its only implementations.
// Each case owns the rule that decides which libraries feed a user.
type Role interface {
	String() string
	// Libraries returns the library ids eligible for a feed, deduplicated.
	Libraries(ctx context.Context, memberships []string, all LibraryLister) ([]string, error)
	// Covers reports whether libraryID is part of the eligible set.
	Covers(memberships []string, libraryID string) bool
	isRole()
}

type MemberRole struct{}

type AdminRole struct{}

var (
	Member Role = MemberRole{}
	Admin  Role = AdminRole{}
)

func (MemberRole) String() string { return "member" }

func (MemberRole) Libraries(_ context.Context, memberships []string, _ LibraryLister) ([]string, error) {
	return dedupe(memberships), nil
}

func (MemberRole) Covers(memberships []string, libraryID string) bool {
	for _, id := range memberships {
		if id == libraryID {
			return true
		}
	}
	return false
}

func (MemberRole) isRole() {}

func (AdminRole) String() string { return "admin" }

// Libraries ignores stored memberships: admins belong to every library.
func (AdminRole) Libraries(ctx context.Context, _ []string, all LibraryLister) ([]string, error) {
	ids, err := all.ListLibraryIDs(ctx)
	if err != nil {
		return nil, err
	}
	return dedupe(ids), nil
}

func (AdminRole) Covers([]string, string) bool { return true }

func (AdminRole) isRole() {}

// ParseRole maps a stored role name to its variant. "user" is accepted as
// a legacy spelling of "member"; an empty name defaults to member.
func ParseRole(name string) (Role, error) {
	switch name {
	case "admin":
		return Admin, nil
	case "member", "user", "":
		return Member, nil
	default:
		return nil, fmt.Errorf("%w: %q", feed_errors.ErrUnknownRole, name)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
