package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/forgo/quest/api/internal/config"
	"github.com/forgo/quest/api/internal/directory"
	"github.com/forgo/quest/api/internal/repository"
	"github.com/forgo/quest/api/internal/store"
)

var playerNames = []string{"Avery", "Blake", "Casey", "Drew", "Ellis", "Frankie", "Gray", "Harper"}

var teamNames = []string{"Red Foxes", "Blue Herons", "Green Owls", "Gold Badgers"}

var landmarks = []struct {
	name string
	hint string
	lat  float64
	lng  float64
}{
	{"Brass Compass", "Fixed to the railing where the ferries dock", 47.6026, -122.3393},
	{"Troll's Coin", "Under the bridge, look for the hubcap eye", 47.6510, -122.3473},
	{"Gasworks Gauge", "The tallest rusted tower guards it", 47.6456, -122.3344},
	{"Market Token", "Where the fish fly in the morning", 47.6097, -122.3422},
	{"Locks Keeper", "Where boats climb the water stairs", 47.6655, -122.3976},
	{"Rainier Cap", "Visible from the viewpoint on a clear day", 47.6205, -122.3493},
}

// seeded collects the IDs written by a seeding run
type seeded struct {
	Session   string   `json:"session"`
	Users     []string `json:"users"`
	Teams     []string `json:"teams"`
	Artifacts []string `json:"artifacts"`
}

func main() {
	// Flags for customization
	sessionID := flag.String("session", "demo-hunt", "ID for the seeded session")
	sessionName := flag.String("name", "Demo Hunt", "Name for the seeded session")
	userCount := flag.Int("users", 6, "Number of users to create")
	teamCount := flag.Int("teams", 2, "Number of teams to create")
	artifactCount := flag.Int("artifacts", 4, "Number of artifacts to create")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Store.Backend == "memory" {
		fmt.Fprintf(os.Stderr, "Error: seeding an in-memory store has no effect\n")
		fmt.Fprintf(os.Stderr, "\nSet STORE_BACKEND=surrealdb and point DB_HOST at a running instance\n")
		os.Exit(1)
	}

	kv := store.NewSurrealDB(store.Config{
		Host:      cfg.Store.Host,
		Port:      cfg.Store.Port,
		User:      cfg.Store.User,
		Password:  cfg.Store.Password,
		Namespace: cfg.Store.Namespace,
		Database:  cfg.Store.Database,
		Prefix:    cfg.Store.Prefix,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := kv.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to store: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = kv.Close() }()

	userRepo := repository.NewUserRepository(kv)
	sessionRepo := repository.NewSessionRepository(kv)
	teamRepo := repository.NewTeamRepository(kv)
	artifactRepo := repository.NewArtifactRepository(kv)

	dirs := directories{
		users: directory.NewUserDirectory(directory.UserDirectoryConfig{
			Users:    userRepo,
			Sessions: sessionRepo,
			Teams:    teamRepo,
		}),
		sessions: directory.NewSessionDirectory(directory.SessionDirectoryConfig{
			Sessions:  sessionRepo,
			Teams:     teamRepo,
			Users:     userRepo,
			Artifacts: artifactRepo,
		}),
		teams: directory.NewTeamDirectory(directory.TeamDirectoryConfig{
			Teams:    teamRepo,
			Sessions: sessionRepo,
			Users:    userRepo,
		}),
		artifacts: directory.NewArtifactDirectory(directory.ArtifactDirectoryConfig{
			Artifacts: artifactRepo,
			Sessions:  sessionRepo,
		}),
	}

	result, err := seed(ctx, dirs, *sessionID, *sessionName, *userCount, *teamCount, *artifactCount)
	if err != nil {
		if errors.Is(err, directory.ErrSessionExists) {
			fmt.Fprintf(os.Stderr, "Error: session %q already exists, pick another -session ID\n", *sessionID)
		} else {
			fmt.Fprintf(os.Stderr, "Error seeding: %v\n", err)
		}
		os.Exit(1)
	}

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		fmt.Println("Demo Hunt Seeded")
		fmt.Println("================")
		fmt.Printf("Session:   %s (%s)\n", result.Session, *sessionName)
		fmt.Printf("Users:     %d joined\n", len(result.Users))
		fmt.Printf("Teams:     %d attached\n", len(result.Teams))
		fmt.Printf("Artifacts: %d offered\n", len(result.Artifacts))
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl http://localhost:%s/v1/sessions/%s\n", cfg.Server.Port, result.Session)
	}
}

// directories bundles the four entity directories the seeder drives
type directories struct {
	users     *directory.UserDirectory
	sessions  *directory.SessionDirectory
	teams     *directory.TeamDirectory
	artifacts *directory.ArtifactDirectory
}

// seed writes a complete demo hunt: an active session with joined users
// spread across teams, offered artifacts, and one recorded find.
func seed(ctx context.Context, d directories, sessionID, sessionName string, userCount, teamCount, artifactCount int) (*seeded, error) {
	result := &seeded{Session: sessionID}

	creatorID := fmt.Sprintf("%s-user-1", sessionID)
	if _, err := d.sessions.Create(ctx, sessionID, creatorID); err != nil {
		return nil, err
	}
	if err := d.sessions.SetName(ctx, sessionID, sessionName); err != nil {
		return nil, err
	}
	start := time.Now().UTC().Truncate(time.Minute)
	if err := d.sessions.SetTimes(ctx, sessionID, start, start.Add(24*time.Hour)); err != nil {
		return nil, err
	}
	if err := d.sessions.SetActive(ctx, sessionID, true); err != nil {
		return nil, err
	}

	for i := 1; i <= userCount; i++ {
		userID := fmt.Sprintf("%s-user-%d", sessionID, i)
		if _, err := d.users.Create(ctx, userID); err != nil {
			return nil, err
		}
		name := playerNames[(i-1)%len(playerNames)]
		if err := d.users.SetDisplayName(ctx, userID, name); err != nil {
			return nil, err
		}
		if err := d.users.SetEmail(ctx, userID, fmt.Sprintf("player%d@demo.local", i)); err != nil {
			return nil, err
		}
		result.Users = append(result.Users, userID)
	}

	for i := 1; i <= teamCount; i++ {
		teamID := fmt.Sprintf("%s-team-%d", sessionID, i)
		if _, err := d.teams.Create(ctx, teamID); err != nil {
			return nil, err
		}
		if err := d.teams.SetName(ctx, teamID, teamNames[(i-1)%len(teamNames)]); err != nil {
			return nil, err
		}
		if err := d.sessions.AddTeam(ctx, sessionID, teamID); err != nil {
			return nil, err
		}
		result.Teams = append(result.Teams, teamID)
	}

	for i := 1; i <= artifactCount; i++ {
		artifactID := fmt.Sprintf("%s-artifact-%d", sessionID, i)
		landmark := landmarks[(i-1)%len(landmarks)]
		if _, err := d.artifacts.Create(ctx, artifactID); err != nil {
			return nil, err
		}
		if err := d.artifacts.SetName(ctx, artifactID, landmark.name); err != nil {
			return nil, err
		}
		if err := d.artifacts.SetHint(ctx, artifactID, landmark.hint); err != nil {
			return nil, err
		}
		if err := d.artifacts.SetCoordinates(ctx, artifactID, landmark.lat, landmark.lng); err != nil {
			return nil, err
		}
		if err := d.sessions.AddArtifact(ctx, sessionID, artifactID); err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, artifactID)
	}

	for i, userID := range result.Users {
		if err := d.users.JoinSession(ctx, userID, sessionID); err != nil {
			return nil, err
		}
		if err := d.users.SetCurrentSession(ctx, userID, sessionID); err != nil {
			return nil, err
		}
		if len(result.Teams) > 0 {
			teamID := result.Teams[i%len(result.Teams)]
			if err := d.users.AssignTeam(ctx, userID, sessionID, teamID); err != nil {
				return nil, err
			}
		}
	}

	// First player has already found the first artifact
	if len(result.Users) > 0 && len(result.Artifacts) > 0 {
		if err := d.users.RecordFound(ctx, result.Users[0], sessionID, result.Artifacts[0]); err != nil {
			return nil, err
		}
		if err := d.users.SetPoints(ctx, result.Users[0], sessionID, 10); err != nil {
			return nil, err
		}
	}

	return result, nil
}
