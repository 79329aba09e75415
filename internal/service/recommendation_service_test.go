package service

import (
	"context"
	"testing"

	"emerge-career-be/internal/entity"
	"emerge-career-be/pkg/content/news"
	"emerge-career-be/pkg/content/youtube"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A client without an API key serves its deterministic fallback and never
// touches the network, which is exactly what these tests need.
func offlineVideoClient() *youtube.Client {
	return youtube.NewClient("")
}

func TestGetVideoRecommendationPersists(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewRecommendationService(factory, newOfflineAdvisor(), offlineVideoClient(), news.NewClient(), silentLogger{})
	ctx := context.Background()
	user := seedUser(t, factory, 0, 1)

	video, err := svc.GetVideoRecommendation(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, "Biology Career Guide", video.Title)

	uow := factory.NewUnitOfWork(ctx)
	stored, err := uow.RecommendationRepository().GetByUserId(ctx, user.Id, entity.RecommendationTypeVideo)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, video.Url, stored[0].Url)
	assert.Equal(t, video.ChannelTitle, stored[0].Metadata["channelTitle"])
}

func TestGetVideoRecommendationReplacesStaleRows(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewRecommendationService(factory, newOfflineAdvisor(), offlineVideoClient(), news.NewClient(), silentLogger{})
	ctx := context.Background()
	user := seedUser(t, factory, 0, 1)

	_, err := svc.GetVideoRecommendation(ctx, user.Id)
	require.NoError(t, err)
	_, err = svc.GetVideoRecommendation(ctx, user.Id)
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	stored, err := uow.RecommendationRepository().GetByUserId(ctx, user.Id, entity.RecommendationTypeVideo)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "repeat requests keep a single video row")
}

func TestGetVideoRecommendationRequiresSubjects(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewRecommendationService(factory, newOfflineAdvisor(), offlineVideoClient(), news.NewClient(), silentLogger{})
	ctx := context.Background()

	bare := &entity.User{Username: "bare@example.com", Password: "pw"}
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, bare))

	_, err := svc.GetVideoRecommendation(ctx, bare.Id)
	assert.EqualError(t, err, "user or subjects not found")

	_, err = svc.GetVideoRecommendation(ctx, uuid.New())
	assert.EqualError(t, err, "user or subjects not found")
}

func TestGetCourseRecommendationGeneratesOnce(t *testing.T) {
	factory := newMemoryFactory()
	scripted := newScriptedAdvisor(`{"title": "Genetics 101", "description": "Intro", "duration": "6 weeks", "level": "Beginner", "url": "https://course.example"}`)
	svc := NewRecommendationService(factory, scripted, offlineVideoClient(), news.NewClient(), silentLogger{})
	ctx := context.Background()
	user := seedUser(t, factory, 0, 1)

	course, err := svc.GetCourseRecommendation(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, "Genetics 101", course.Title)
	assert.Equal(t, "6 weeks", course.Duration)

	// a second call returns the stored course instead of generating again
	again, err := svc.GetCourseRecommendation(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, course, again)

	uow := factory.NewUnitOfWork(ctx)
	stored, err := uow.RecommendationRepository().GetByUserId(ctx, user.Id, entity.RecommendationTypeCourse)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestGetCourseRecommendationFallsBack(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewRecommendationService(factory, newOfflineAdvisor(), offlineVideoClient(), news.NewClient(), silentLogger{})
	ctx := context.Background()
	user := seedUser(t, factory, 0, 1)

	course, err := svc.GetCourseRecommendation(ctx, user.Id)
	require.NoError(t, err, "upstream failure degrades to the canned course")
	assert.NotEmpty(t, course.Title)
	assert.NotEmpty(t, course.Url)
}

func TestGetCourseRecommendationUnknownUser(t *testing.T) {
	factory := newMemoryFactory()
	svc := NewRecommendationService(factory, newOfflineAdvisor(), offlineVideoClient(), news.NewClient(), silentLogger{})

	_, err := svc.GetCourseRecommendation(context.Background(), uuid.New())
	assert.EqualError(t, err, "user not found")
}
