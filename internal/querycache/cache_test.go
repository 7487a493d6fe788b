package querycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestQueryCachesData(t *testing.T) {
	c := New()
	key := PublicationsKey()
	var calls int32

	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"a", "b"}, nil
	}

	res := c.Query(context.Background(), key, fetch)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	res = c.Query(context.Background(), key, fetch)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("fetcher ran %d times, want 1", got)
	}
}

func TestConcurrentIdenticalQueriesShareOneFetch(t *testing.T) {
	c := New()
	key := CoursesKey("")
	var calls int32
	release := make(chan struct{})

	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "courses", nil
	}

	var wg sync.WaitGroup
	const n = 8
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := c.Query(context.Background(), key, fetch)
			if res.Err != nil {
				t.Errorf("unexpected error: %v", res.Err)
			}
		}()
	}

	// Give every goroutine a chance to reach the cache before releasing.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("fetcher ran %d times for %d concurrent callers, want 1", got, n)
	}
}

func TestInvalidateTriggersBackgroundRefetch(t *testing.T) {
	c := New()
	key := PublicationsKey()
	var value atomic.Value
	value.Store("v1")

	fetch := func(ctx context.Context) (interface{}, error) {
		return value.Load(), nil
	}

	res := c.Query(context.Background(), key, fetch)
	if res.Data != "v1" {
		t.Fatalf("initial data = %v, want v1", res.Data)
	}

	// Simulate a successful mutation followed by invalidation.
	value.Store("v2")
	err := c.Mutate(context.Background(), func(ctx context.Context) error { return nil },
		ByEntity(EntityPublications))
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	c.Wait()

	res = c.Query(context.Background(), key, fetch)
	if res.Data != "v2" {
		t.Errorf("data after invalidation = %v, want v2", res.Data)
	}
}

func TestFailedMutationLeavesCacheUntouched(t *testing.T) {
	c := New()
	key := MessagesKey()
	fetch := func(ctx context.Context) (interface{}, error) { return "cached", nil }
	c.Query(context.Background(), key, fetch)

	wantErr := errors.New("write failed")
	err := c.Mutate(context.Background(), func(ctx context.Context) error { return wantErr },
		ByEntity(EntityMessages))
	if !errors.Is(err, wantErr) {
		t.Fatalf("mutate error = %v, want %v", err, wantErr)
	}

	if _, ok := c.Peek(key); !ok {
		t.Error("cache entry was invalidated by a failed mutation")
	}
}

func TestStaleWhileError(t *testing.T) {
	c := New()
	key := ResearchKey("")
	var fail atomic.Bool

	fetch := func(ctx context.Context) (interface{}, error) {
		if fail.Load() {
			return nil, errors.New("backend unavailable")
		}
		return "projects", nil
	}

	c.Query(context.Background(), key, fetch)

	// Mark stale without a usable backend: the old data must stay visible.
	fail.Store(true)
	c.Invalidate(ByKey(key))
	c.Wait()

	res := c.Query(context.Background(), key, fetch)
	if res.Data != "projects" {
		t.Errorf("stale data not returned, got %v", res.Data)
	}
	if res.Err == nil {
		t.Error("expected fetch error to be surfaced alongside stale data")
	}
	if !res.Stale {
		t.Error("result not marked stale")
	}
}

func TestCourseMutationInvalidatesScopedMaterials(t *testing.T) {
	c := New()
	coursesKey := CoursesKey("")
	materialsKey := MaterialsKey(42)
	otherMaterialsKey := MaterialsKey(7)

	fetch := func(v interface{}) Fetcher {
		return func(ctx context.Context) (interface{}, error) { return v, nil }
	}
	c.Query(context.Background(), coursesKey, fetch("courses"))
	c.Query(context.Background(), materialsKey, fetch("materials-42"))
	c.Query(context.Background(), otherMaterialsKey, fetch("materials-7"))

	// Deleting course 42 drops its materials outright; they must not be
	// served even stale.
	err := c.Mutate(context.Background(), func(ctx context.Context) error { return nil },
		ByEntity(EntityCourses))
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	c.Drop(ByKey(materialsKey))
	c.Wait()

	if _, ok := c.Peek(materialsKey); ok {
		t.Error("materials for the deleted course still cached")
	}
	if _, ok := c.Peek(otherMaterialsKey); !ok {
		t.Error("materials of an unrelated course were dropped")
	}
}

func TestEndToEndCourseMaterialScenario(t *testing.T) {
	c := New()
	courses := []string{"CS201"}
	materials := map[int64][]string{}

	listCourses := func(ctx context.Context) (interface{}, error) {
		out := append([]string(nil), courses...)
		return out, nil
	}
	listMaterials := func(id int64) Fetcher {
		return func(ctx context.Context) (interface{}, error) {
			return append([]string(nil), materials[1]...), nil
		}
	}

	res := c.Query(context.Background(), CoursesKey(""), listCourses)
	if got := res.Data.([]string); len(got) != 1 {
		t.Fatalf("initial course list = %v", got)
	}

	// Create CS450.
	err := c.Mutate(context.Background(), func(ctx context.Context) error {
		courses = append(courses, "CS450")
		return nil
	}, ByEntity(EntityCourses))
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	c.Wait()

	res = c.Query(context.Background(), CoursesKey(""), listCourses)
	got := res.Data.([]string)
	if len(got) != 2 || got[0] != "CS201" || got[1] != "CS450" {
		t.Fatalf("course list after create = %v, want [CS201 CS450]", got)
	}

	// Upload a material to the new course.
	err = c.Mutate(context.Background(), func(ctx context.Context) error {
		materials[1] = append(materials[1], "syllabus.pdf")
		return nil
	}, ByKey(MaterialsKey(1)))
	if err != nil {
		t.Fatalf("upload material: %v", err)
	}
	res = c.Query(context.Background(), MaterialsKey(1), listMaterials(1))
	if got := res.Data.([]string); len(got) != 1 {
		t.Fatalf("materials after upload = %v, want 1 entry", got)
	}

	// Delete the course: its materials query must be dropped.
	err = c.Mutate(context.Background(), func(ctx context.Context) error {
		courses = courses[:1]
		delete(materials, 1)
		return nil
	}, ByEntity(EntityCourses))
	if err != nil {
		t.Fatalf("delete course: %v", err)
	}
	c.Drop(ByKey(MaterialsKey(1)))
	c.Wait()

	if _, ok := c.Peek(MaterialsKey(1)); ok {
		t.Error("materials query for deleted course still cached")
	}
}
