package roster

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/giantswarm/cmdtree/pkg/cmdtree"
	"github.com/giantswarm/cmdtree/pkg/logging"

	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

// User is one entry of the roster file.
type User struct {
	Name string `yaml:"name" json:"name"`
	Role string `yaml:"role,omitempty" json:"role,omitempty"`
}

type rosterFile struct {
	Users []User `yaml:"users"`
}

// Roster is the set of users known to the console, read from a YAML file:
//
//	users:
//	  - name: alice
//	    role: admin
//	  - name: bob
type Roster struct {
	path string

	mu    sync.RWMutex
	users []User

	reloads singleflight.Group
}

// New creates a roster backed by path. Nothing is read until Reload.
func New(path string) *Roster {
	return &Roster{path: path}
}

// Path returns the backing file.
func (r *Roster) Path() string {
	return r.path
}

// Reload re-reads the backing file and returns the number of users.
// Concurrent calls share one read. A missing file yields an empty roster.
func (r *Roster) Reload(ctx context.Context) (int, error) {
	result, err, _ := r.reloads.Do("reload", func() (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		users, err := readUsers(r.path)
		if err != nil {
			return 0, err
		}

		r.mu.Lock()
		r.users = users
		r.mu.Unlock()

		logging.Info("Roster", "Loaded %d users from %s", len(users), r.path)
		return len(users), nil
	})
	if err != nil {
		return 0, err
	}
	return result.(int), nil
}

func readUsers(path string) ([]User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Roster", "No roster file at %s", path)
			return []User{}, nil
		}
		return nil, fmt.Errorf("failed to read roster %s: %w", path, err)
	}

	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse roster %s: %w", path, err)
	}

	seen := map[string]bool{}
	users := make([]User, 0, len(f.Users))
	for _, u := range f.Users {
		u.Name = strings.TrimSpace(u.Name)
		key := strings.ToLower(u.Name)
		if u.Name == "" || strings.ContainsAny(u.Name, " \t") || seen[key] {
			logging.Warn("Roster", "Skipping invalid or duplicate user %q in %s", u.Name, path)
			continue
		}
		seen[key] = true
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// Users returns a copy of the users, sorted by name.
func (r *Roster) Users() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]User(nil), r.users...)
}

// Names returns the user names, sorted.
func (r *Roster) Names() []string {
	users := r.Users()
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name
	}
	return names
}

// Lookup finds a user by name, ignoring case.
func (r *Roster) Lookup(name string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Name, name) {
			return u, true
		}
	}
	return User{}, false
}

// Complete offers the user names starting with the value being completed.
func (r *Roster) Complete(_ context.Context, data cmdtree.CompletionData) []string {
	return cmdtree.CandidatesFrom(data, r.Users(), func(u User) string { return u.Name })
}
