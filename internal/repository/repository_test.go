package repository_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"eris-api/internal/database"
	"eris-api/internal/repository"
	"eris-api/internal/schema"
	"eris-api/internal/testutil"
)

func mustValidateAll(t *testing.T, r *schema.Resource, body string) []schema.Field {
	t.Helper()
	fields, err := r.ValidateAll([]byte(body))
	if err != nil {
		t.Fatalf("ValidateAll failed: %v", err)
	}
	return fields
}

func mustValidatePartial(t *testing.T, r *schema.Resource, body string) []schema.Field {
	t.Helper()
	fields, err := r.ValidatePartial([]byte(body))
	if err != nil {
		t.Fatalf("ValidatePartial failed: %v", err)
	}
	return fields
}

func TestRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}

	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	db := database.Wrap(containers.DB)
	ctx := context.Background()

	profiles := repository.NewProfileRepository(db)
	details := repository.NewDetailsRepository(db)
	photos := repository.NewPhotoRepository(db)

	t.Run("EmptyListIsNotNil", func(t *testing.T) {
		containers.TruncateAll(t)

		rows, err := profiles.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if rows == nil {
			t.Fatal("Empty list must be an empty slice, not nil, so it serializes as []")
		}
		if len(rows) != 0 {
			t.Fatalf("Expected no rows, got %d", len(rows))
		}
	})

	t.Run("ProfileCreateReadBack", func(t *testing.T) {
		containers.TruncateAll(t)

		created, err := profiles.Create(ctx, mustValidateAll(t, schema.Profile,
			`{"District":"Sacramento","Route":"I-80","PostMile":1.2,"AssessmentStatus":"Working","IsUploaded":true}`))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		id, ok := created["AssessmentID"].(int64)
		if !ok || id == 0 {
			t.Fatalf("Created row has no generated identity: %v", created["AssessmentID"])
		}
		if created["District"] != "Sacramento" {
			t.Errorf("District = %v", created["District"])
		}
		if created["IsUploaded"] != int64(1) {
			t.Errorf("IsUploaded = %v (%T), want 1", created["IsUploaded"], created["IsUploaded"])
		}
		// absent columns are stored and read back as null
		if created["Notes"] != nil {
			t.Errorf("Notes = %v, want nil", created["Notes"])
		}

		got, err := profiles.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got["Route"] != "I-80" {
			t.Errorf("Route = %v", got["Route"])
		}
	})

	t.Run("ProfileListNewestFirst", func(t *testing.T) {
		containers.TruncateAll(t)

		for _, district := range []string{"D1", "D2", "D3"} {
			if _, err := profiles.Create(ctx, mustValidateAll(t, schema.Profile,
				`{"District":"`+district+`"}`)); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}

		rows, err := profiles.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("Listed %d rows, want 3", len(rows))
		}
		if rows[0]["District"] != "D3" || rows[2]["District"] != "D1" {
			t.Errorf("Rows not in descending identity order: %v, %v, %v",
				rows[0]["District"], rows[1]["District"], rows[2]["District"])
		}
	})

	t.Run("ProfileUpdateOverwrites", func(t *testing.T) {
		containers.TruncateAll(t)

		created, err := profiles.Create(ctx, mustValidateAll(t, schema.Profile,
			`{"District":"Yolo","Notes":"initial"}`))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		id := created["AssessmentID"].(int64)

		updated, err := profiles.Update(ctx, id, mustValidateAll(t, schema.Profile,
			`{"District":"Butte"}`))
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated["District"] != "Butte" {
			t.Errorf("District = %v", updated["District"])
		}
		// full-overwrite semantics: the absent Notes column became null
		if updated["Notes"] != nil {
			t.Errorf("Notes = %v, want nil after overwrite", updated["Notes"])
		}
	})

	t.Run("GetUnknownID", func(t *testing.T) {
		containers.TruncateAll(t)

		if _, err := profiles.Get(ctx, 9999); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ConcurrentCreates", func(t *testing.T) {
		containers.TruncateAll(t)

		var wg sync.WaitGroup
		errs := make(chan error, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := profiles.Create(ctx, mustValidateAll(t, schema.Profile,
					`{"District":"concurrent"}`))
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("Concurrent create failed: %v", err)
			}
		}

		rows, err := profiles.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(rows) != 10 {
			t.Fatalf("Listed %d rows, want 10", len(rows))
		}
		seen := map[int64]bool{}
		for _, row := range rows {
			id := row["AssessmentID"].(int64)
			if seen[id] {
				t.Fatalf("Duplicate identity %d", id)
			}
			seen[id] = true
		}
	})

	t.Run("DetailsFilteredList", func(t *testing.T) {
		containers.TruncateAll(t)

		first, err := profiles.Create(ctx, mustValidateAll(t, schema.Profile, `{"District":"A"}`))
		if err != nil {
			t.Fatalf("Create profile failed: %v", err)
		}
		second, err := profiles.Create(ctx, mustValidateAll(t, schema.Profile, `{"District":"B"}`))
		if err != nil {
			t.Fatalf("Create profile failed: %v", err)
		}
		firstID := first["AssessmentID"].(int64)
		secondID := second["AssessmentID"].(int64)

		for i, assessmentID := range []int64{firstID, firstID, secondID} {
			body := `{"AssessmentID":` + itoa(assessmentID) + `,"IsFall":` + itoa(int64(i%2)) + `}`
			if _, err := details.Create(ctx, mustValidatePartial(t, schema.Details, body)); err != nil {
				t.Fatalf("Create details failed: %v", err)
			}
		}

		rows, err := details.List(ctx, &firstID)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("Filtered list returned %d rows, want 2", len(rows))
		}
		// ascending identity order
		if rows[0]["AssessmentDetailsID"].(int64) > rows[1]["AssessmentDetailsID"].(int64) {
			t.Error("Details must list in ascending identity order")
		}

		all, err := details.List(ctx, nil)
		if err != nil {
			t.Fatalf("Unfiltered list failed: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("Unfiltered list returned %d rows, want 3", len(all))
		}
	})

	t.Run("DetailsPartialUpdate", func(t *testing.T) {
		containers.TruncateAll(t)

		profile, err := profiles.Create(ctx, mustValidateAll(t, schema.Profile, `{"District":"A"}`))
		if err != nil {
			t.Fatalf("Create profile failed: %v", err)
		}
		profileID := profile["AssessmentID"].(int64)

		created, err := details.Create(ctx, mustValidatePartial(t, schema.Details,
			`{"AssessmentID":`+itoa(profileID)+`,"IsFall":1,"SlopeHeight":40.5,"ObservationsAndNotes":"toe scour"}`))
		if err != nil {
			t.Fatalf("Create details failed: %v", err)
		}
		id := created["AssessmentDetailsID"].(int64)

		updated, err := details.Update(ctx, id, mustValidatePartial(t, schema.Details,
			`{"SlopeHeight":55}`))
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated["SlopeHeight"] != 55.0 {
			t.Errorf("SlopeHeight = %v", updated["SlopeHeight"])
		}
		// partial semantics: untouched columns keep their values
		if updated["IsFall"] != int64(1) {
			t.Errorf("IsFall = %v, want 1", updated["IsFall"])
		}
		if updated["ObservationsAndNotes"] != "toe scour" {
			t.Errorf("ObservationsAndNotes = %v", updated["ObservationsAndNotes"])
		}
	})

	t.Run("PhotosNewestFirst", func(t *testing.T) {
		containers.TruncateAll(t)

		profile, err := profiles.Create(ctx, mustValidateAll(t, schema.Profile, `{"District":"A"}`))
		if err != nil {
			t.Fatalf("Create profile failed: %v", err)
		}
		profileID := profile["AssessmentID"].(int64)

		for _, path := range []string{"a.jpg", "b.jpg"} {
			body := `{"AssessmentID":` + itoa(profileID) + `,"FilePath":"` + path + `"}`
			if _, err := photos.Create(ctx, mustValidatePartial(t, schema.Photo, body)); err != nil {
				t.Fatalf("Create photo failed: %v", err)
			}
		}

		rows, err := photos.List(ctx, &profileID)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("Listed %d rows, want 2", len(rows))
		}
		if rows[0]["FilePath"] != "b.jpg" {
			t.Errorf("Photos must list newest first, got %v", rows[0]["FilePath"])
		}
	})
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
