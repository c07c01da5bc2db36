package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"talknotes/internal/catalog"
	"talknotes/internal/fileutil"
	"talknotes/internal/store"
)

func TestNoCommandFlagPrintsHelp(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := env.run(t)
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	requireContains(t, out, "Usage:")
	requireContains(t, out, "--newPerson")
	if _, err := os.Stat(env.metadataPath); !os.IsNotExist(err) {
		t.Fatalf("help must not create metadata, stat err=%v", err)
	}
}

func TestNewPersonOnFreshDatabase(t *testing.T) {
	env := setupCLITestEnv(t)

	out := env.mustRun(t, "-n", "Ada Lovelace")
	requireContains(t, out, "No notes database found, creating directory "+env.databasePath)
	requireContains(t, out, "No metadata file found, starting with an empty database.")
	requireContains(t, out, "Successfully added Ada Lovelace to the database. Their ID is 0")

	if info, err := os.Stat(env.databasePath); err != nil || !info.IsDir() {
		t.Fatalf("expected notes directory, err=%v", err)
	}
	g := env.loadGraph(t)
	if len(g.People) != 1 || g.People[0].Name != "ada lovelace" || g.People[0].FolderName != "ada_lovelace" {
		t.Fatalf("unexpected people %+v", g.People)
	}

	out = env.mustRun(t, "--newPerson", "Grace Hopper")
	requireNotContains(t, out, "No metadata file found")
	requireContains(t, out, "Their ID is 1")
	if _, err := os.Stat(fileutil.BackupPath(env.metadataPath)); err != nil {
		t.Fatalf("expected backup of previous snapshot: %v", err)
	}
}

func TestSearch(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mustRun(t, "-n", "Ada Lovelace")
	env.mustRun(t, "-n", "Ada Smith")
	env.mustRun(t, "-n", "Bob Lovelace")
	before, err := os.ReadFile(env.metadataPath)
	if err != nil {
		t.Fatal(err)
	}

	out := env.mustRun(t, "-s", "ADA LOVELACE")
	want := "0: Ada Lovelace\n1: Ada Smith\n2: Bob Lovelace\n"
	if out != want {
		t.Fatalf("search output = %q, want %q", out, want)
	}

	out = env.mustRun(t, "-s", "charles")
	if out != "Name not found\n" {
		t.Fatalf("search miss output = %q", out)
	}

	after, err := os.ReadFile(env.metadataPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Fatal("search must not rewrite the snapshot")
	}
}

func TestAddAndEditTalk(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mustRun(t, "-n", "Ada Lovelace")

	env.setNote(t, "Year: 2023, month: 5, day: 1;\nTitle: Notes on the Engine\nVenue: Royal Society\nNotes: went well")
	out := env.mustRun(t, "-a", "0")
	notePath := filepath.Join(env.databasePath, "ada_lovelace", "0.txt")
	requireContains(t, out, "Successfully saved talk information to "+notePath)
	requireContains(t, out, "Successfully added a talk for 0 (Ada Lovelace) to the database (talk id = 0).")

	data, err := os.ReadFile(notePath)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	requireContains(t, string(data), "Notes: went well")

	_, talk, err := env.loadGraph(t).Talk(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if talk.DateString() != "2023-05-01" || talk.Title != "Notes on the Engine" || talk.Venue != "Royal Society" {
		t.Fatalf("unexpected talk %+v", talk)
	}

	env.setNote(t, "Year: 2023, month: 13, day: 1;\nTitle: Revised Title\nVenue:\n")
	out = env.mustRun(t, "-e", "0", "0")
	requireContains(t, out, "[WARN] Error parsing date information, using today's date")
	requireContains(t, out, "Successfully edited talk 0 for 0 (Ada Lovelace).")

	_, talk, err = env.loadGraph(t).Talk(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if talk.Title != "Revised Title" || talk.Venue != "" {
		t.Fatalf("edit did not overwrite fields: %+v", talk)
	}
	if talk.DateString() == "2023-05-01" {
		t.Fatal("invalid date should fall back to today")
	}
}

func TestAddTalkWithEmptyEditorSession(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mustRun(t, "-n", "ada")

	out := env.mustRun(t, "-a", "0")
	requireContains(t, out, "[WARN] Editor session returned no text")
	requireNotContains(t, out, "Successfully saved talk information")
	requireContains(t, out, "(talk id = 0)")

	if _, err := os.Stat(filepath.Join(env.databasePath, "ada", "0.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected no note file, stat err=%v", err)
	}
	g := env.loadGraph(t)
	if len(g.People[0].Talks) != 1 {
		t.Fatalf("talk should still be recorded, got %d", len(g.People[0].Talks))
	}
}

func TestUpdateRoleAndPrintInfo(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mustRun(t, "-n", "Ada Lovelace")
	requireContains(t, env.mustRun(t, "-u", "0", "Analyst"), "Successfully updated the role for 0 (Ada Lovelace)")
	env.mustRun(t, "-u", "0", "Chief Scientist")

	env.setNote(t, "Title: First\nVenue: London\n")
	env.mustRun(t, "-a", "0")
	env.setNote(t, "Venue: Turin\n")
	env.mustRun(t, "-a", "0")

	out := env.mustRun(t, "-i", "0")
	requireContains(t, out, "Name: Ada Lovelace (id=0)\n")
	requireContains(t, out, "Role: Chief Scientist\n")
	requireContains(t, out, "Previous role: Analyst\n")
	requireContains(t, out, "First")
	requireContains(t, out, "London")
	requireContains(t, out, "Turin")
	requireContains(t, out, untitled)

	person := env.loadGraph(t).People[0]
	if person.Role != "Chief Scientist" || len(person.PastRoles) != 1 || person.PastRoles[0] != "Analyst" {
		t.Fatalf("unexpected roles %+v", person)
	}
}

func TestPrintInfoWithoutTalks(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mustRun(t, "-n", "grace")

	out := env.mustRun(t, "-i", "0")
	requireContains(t, out, "Name: Grace (id=0)")
	requireNotContains(t, out, "Role:")
	requireContains(t, out, "No talks recorded")
}

func TestMissingTargetsFailWithoutSaving(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mustRun(t, "-n", "Ada Lovelace")
	before, err := os.ReadFile(env.metadataPath)
	if err != nil {
		t.Fatal(err)
	}
	backup := fileutil.BackupPath(env.metadataPath)
	if err := os.Remove(backup); err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"print info", []string{"-i", "5"}, "No person with id 5 exists in this database"},
		{"add talk", []string{"-a", "3"}, "No person with id 3 exists in this database"},
		{"update role", []string{"-u", "7", "CTO"}, "No person with id 7 exists in this database"},
		{"edit talk", []string{"-e", "0", "2"}, "Person 0 (Ada Lovelace) doesn't have talk 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := env.run(t, tc.args...)
			var notFound *catalog.NotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("expected NotFoundError, got %v", err)
			}
			requireContains(t, err.Error(), tc.want)

			after, err := os.ReadFile(env.metadataPath)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(before, after) {
				t.Fatal("snapshot changed after a failed command")
			}
			if _, err := os.Stat(backup); !os.IsNotExist(err) {
				t.Fatalf("failed command must not rotate the backup, stat err=%v", err)
			}
		})
	}
}

func TestArgumentErrors(t *testing.T) {
	env := setupCLITestEnv(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"exclusive flags", []string{env.metadataPath, env.databasePath, "-n", "ada", "-s", "ada"}, "none of the others can be"},
		{"missing paths", []string{env.metadataPath, "-n", "ada"}, "expected <metadataPath> and <databasePath>"},
		{"edit needs talk id", []string{env.metadataPath, env.databasePath, "-e", "0"}, "--editTalk requires two values"},
		{"role needs value", []string{env.metadataPath, env.databasePath, "-u", "0"}, "--updateRole requires two values"},
		{"extra positional", []string{env.metadataPath, env.databasePath, "-a", "0", "extra"}, "unexpected arguments: extra"},
		{"non-numeric id", []string{env.metadataPath, env.databasePath, "-i", "ada"}, `invalid person id "ada"`},
		{"non-numeric talk id", []string{env.metadataPath, env.databasePath, "-e", "0", "x"}, `invalid talk id "x"`},
		{"empty name", []string{env.metadataPath, env.databasePath, "-n", "  "}, "requires a non-empty name"},
		{"flag splits role pair", []string{env.metadataPath, env.databasePath, "-u", "0", "-c", env.configPath, "CTO"}, "--updateRole requires two values"},
		{"role pair at end", []string{env.metadataPath, "-u", "0"}, "--updateRole requires two values"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCLI(t, tc.args, env.configPath)
			if err == nil {
				t.Fatalf("expected error for %v", tc.args)
			}
			requireContains(t, err.Error(), tc.want)
		})
	}
	if _, err := os.Stat(env.metadataPath); !os.IsNotExist(err) {
		t.Fatalf("argument errors must not create metadata, stat err=%v", err)
	}
}

func TestLockedMetadataFailsFast(t *testing.T) {
	env := setupCLITestEnv(t)
	lock := flock.New(env.metadataPath + ".lock")
	ok, err := lock.TryLock()
	if err != nil || !ok {
		t.Fatalf("take lock: ok=%v err=%v", ok, err)
	}
	t.Cleanup(func() { _ = lock.Unlock() })

	_, _, err = env.run(t, "-n", "ada")
	if !errors.Is(err, store.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestNewerSchemaIsRejected(t *testing.T) {
	env := setupCLITestEnv(t)
	content := []byte(`{"schema_version": 99, "people": []}`)
	if err := os.WriteFile(env.metadataPath, content, 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := env.run(t, "-n", "ada")
	var versionErr *store.VersionError
	if !errors.As(err, &versionErr) || versionErr.Version != 99 {
		t.Fatalf("expected VersionError, got %v", err)
	}
	after, err := os.ReadFile(env.metadataPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(content, after) {
		t.Fatal("newer snapshot must be left untouched")
	}
}

func TestPairedFlagBindsWhereverItAppears(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mustRun(t, "-n", "Ada Lovelace")

	out, stderr, err := runCLI(t, []string{env.metadataPath, "-u", "0", "CTO", env.databasePath}, env.configPath)
	if err != nil {
		t.Fatalf("update role: %v\nstderr: %s", err, stderr)
	}
	requireContains(t, out, "Successfully updated the role for 0 (Ada Lovelace)")
	requireNotContains(t, out, "No notes database found")
	if _, err := os.Stat("CTO"); !os.IsNotExist(err) {
		t.Fatalf("role value must not be taken as a path, stat err=%v", err)
	}
	if role := env.loadGraph(t).People[0].Role; role != "CTO" {
		t.Fatalf("role = %q, want CTO", role)
	}

	env.setNote(t, "Title: Moved\n")
	env.mustRun(t, "-a", "0")
	if _, _, err := runCLI(t, []string{"-e", "0", "0", env.metadataPath, env.databasePath}, env.configPath); err != nil {
		t.Fatalf("edit talk with leading flag: %v", err)
	}
}

func TestMutatingAfterCorruptSnapshotKeepsBackup(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mustRun(t, "-n", "Ada Lovelace")
	env.mustRun(t, "-n", "Grace Hopper")
	backupPath := fileutil.BackupPath(env.metadataPath)
	good, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(env.metadataPath, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := env.mustRun(t, "-n", "Alan Turing")
	requireContains(t, out, "No metadata file found, starting with an empty database.")
	requireContains(t, out, "Their ID is 0")

	after, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(good, after) {
		t.Fatal("backup was replaced by the damaged snapshot")
	}
	damaged, err := os.ReadFile(fileutil.CorruptPath(env.metadataPath))
	if err != nil || string(damaged) != "{broken" {
		t.Fatalf("damaged snapshot = %q, %v", damaged, err)
	}
}
