// Command bootstrap-project seeds a dashboard user, a project and its API
// key for local development. The plaintext key is printed once; only its
// hash reaches the database.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/scoreforge/scoreforge/internal/auth"
	"github.com/scoreforge/scoreforge/internal/model"
	"github.com/scoreforge/scoreforge/internal/repository"
)

type output struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	ProjectID int64  `json:"project_id"`
	Project   string `json:"project"`
	APIKey    string `json:"api_key"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		username    = flag.String("username", "dev", "Dashboard username to create or reuse")
		email       = flag.String("email", "dev@scoreforge.local", "User email")
		password    = flag.String("password", "devpassword", "User password")
		project     = flag.String("project", "bootstrap", "Project name")
		keyEnv      = flag.String("key-env", auth.EnvTest, "API key environment: live or test")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	user, err := ensureUser(ctx, repo, *username, *email, *password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	proj := &model.Project{Name: *project, OwnerID: user.ID}
	if err := repo.CreateProject(ctx, proj); err != nil {
		fmt.Fprintln(os.Stderr, "create project:", err)
		os.Exit(1)
	}

	generated, err := auth.GenerateAPIKey(*keyEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate api key:", err)
		os.Exit(1)
	}

	key := &model.APIKey{
		ID:        ulid.Make().String(),
		ProjectID: proj.ID,
		KeyHash:   generated.Hash,
	}
	if err := repo.CreateAPIKey(ctx, key); err != nil {
		fmt.Fprintln(os.Stderr, "store api key:", err)
		os.Exit(1)
	}

	out := output{
		UserID:    user.ID,
		Username:  user.Username,
		ProjectID: proj.ID,
		Project:   proj.Name,
		APIKey:    generated.Plaintext,
	}

	if *format == "json" {
		_ = json.NewEncoder(os.Stdout).Encode(out)
		return
	}

	fmt.Printf("user:       %s (id %d)\n", out.Username, out.UserID)
	fmt.Printf("project:    %s (id %d)\n", out.Project, out.ProjectID)
	fmt.Printf("api key:    %s\n", out.APIKey)
	fmt.Println("store the key now; it cannot be shown again")
}

// ensureUser creates the user or reuses an existing one with the same
// username.
func ensureUser(ctx context.Context, repo *repository.Repository, username, email, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	err = repo.CreateUser(ctx, user)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, repository.ErrUsernameExists) || errors.Is(err, repository.ErrEmailExists) {
		return repo.GetUserByUsername(ctx, username)
	}
	return nil, fmt.Errorf("create user: %w", err)
}
