package service

import (
	"Bloghouse/internal/api/dto"
	"Bloghouse/internal/model"
	"Bloghouse/internal/pkg/database"
	"Bloghouse/internal/pkg/util"
	"Bloghouse/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db         *gorm.DB
	categories CategoryService
	posts      *postServiceImpl
	users      UserService
	policy     DeletePolicy
	clock      time.Time
}

func setupService(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.NewMemoryDB(context.Background(), t.Name())
	require.NoError(t, err)

	txm := repository.NewTxManager(db)
	categoryRepo := repository.NewCategoryRepo(db)
	postRepo := repository.NewPostRepository(db)
	userRepo := repository.NewUserRepo(db)
	policy := NewDeletePolicy(categoryRepo, postRepo)

	env := &testEnv{
		db:         db,
		categories: NewCategoryService(txm, categoryRepo, policy),
		users:      NewUserService(userRepo),
		policy:     policy,
		clock:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	env.posts = NewPostService(txm, postRepo, categoryRepo, userRepo, policy).(*postServiceImpl)
	env.posts.now = func() time.Time { return env.clock }
	return env
}

func (e *testEnv) author(t *testing.T) *model.User {
	t.Helper()
	u, err := e.users.CreateUser(context.Background(), "Author", "author@example.com")
	require.NoError(t, err)
	return u
}

func requireValidation(t *testing.T, err error, field, rule string) {
	t.Helper()
	var vErr *util.ValidationError
	require.True(t, errors.As(err, &vErr), "expected validation error, got %v", err)
	for _, fe := range vErr.Errors {
		if fe.Field == field && fe.Rule == rule {
			return
		}
	}
	t.Fatalf("no %s/%s in %+v", field, rule, vErr.Errors)
}

func TestDeletePolicy_GuardTable(t *testing.T) {
	env := setupService(t)

	assert.Equal(t, []string{"root", "children", "posts"}, env.policy.Guards(model.EntityCategory))
	assert.Empty(t, env.policy.Guards(model.EntityPost))
}

func TestCategoryService_CreateDefaultsToRoot(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	created, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "News"})
	require.NoError(t, err)

	assert.Equal(t, model.RootCategoryID, created.ParentID)
	assert.Equal(t, "news", created.Slug)
	require.NotNil(t, created.ParentCategory)
	assert.Equal(t, "Без категорії", created.ParentCategory.Title)
	assert.Nil(t, created.Description)
}

func TestCategoryService_CreateWithParent(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	tech, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "Tech"})
	require.NoError(t, err)

	desc := "  All about Go  "
	golang, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{
		Title:       "Go",
		ParentID:    &tech.ID,
		Description: &desc,
	})
	require.NoError(t, err)

	assert.Equal(t, tech.ID, golang.ParentID)
	require.NotNil(t, golang.ParentCategory)
	assert.Equal(t, "Tech", golang.ParentCategory.Title)
	require.NotNil(t, golang.Description)
	assert.Equal(t, "All about Go", *golang.Description)
}

func TestCategoryService_CreateValidation(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	t.Run("title required", func(t *testing.T) {
		_, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "   "})
		requireValidation(t, err, "title", util.RuleRequired)
	})

	t.Run("title too long", func(t *testing.T) {
		_, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: strings.Repeat("я", 256)})
		requireValidation(t, err, "title", util.RuleMax)
	})

	t.Run("255 cyrillic runes accepted", func(t *testing.T) {
		_, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: strings.Repeat("я", 255)})
		require.NoError(t, err)
	})

	t.Run("missing parent", func(t *testing.T) {
		_, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "Orphan", ParentID: util.PtrUint64(999)})
		requireValidation(t, err, "parent_id", util.RuleExists)
	})

	t.Run("parent beyond BIGINT range", func(t *testing.T) {
		_, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "Huge", ParentID: util.PtrUint64(math.MaxUint64)})
		requireValidation(t, err, "parent_id", util.RuleExists)
	})

	t.Run("description too long", func(t *testing.T) {
		desc := strings.Repeat("d", 1001)
		_, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "Long", Description: &desc})
		requireValidation(t, err, "description", util.RuleMax)
	})
}

func TestCategoryService_SlugNotUnique(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	a, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "Привіт Світ"})
	require.NoError(t, err)
	b, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "Привіт Світ"})
	require.NoError(t, err)

	assert.Equal(t, "privit-svit", a.Slug)
	assert.Equal(t, a.Slug, b.Slug)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCategoryService_Update(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	tech, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "Tech"})
	require.NoError(t, err)
	golang, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "Go", ParentID: &tech.ID})
	require.NoError(t, err)

	t.Run("not found before validation", func(t *testing.T) {
		_, err := env.categories.UpdateCategory(ctx, 999, &dto.CategoryBaseDTO{})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("self parent rejected", func(t *testing.T) {
		_, err := env.categories.UpdateCategory(ctx, golang.ID, &dto.CategoryBaseDTO{Title: "Go", ParentID: &golang.ID})
		requireValidation(t, err, "parent_id", util.RuleNotIn)
	})

	t.Run("rename re-derives slug", func(t *testing.T) {
		updated, err := env.categories.UpdateCategory(ctx, golang.ID, &dto.CategoryBaseDTO{Title: "Golang", ParentID: &tech.ID})
		require.NoError(t, err)
		assert.Equal(t, "golang", updated.Slug)
		assert.Equal(t, tech.ID, updated.ParentID)
	})

	t.Run("absent parent moves to root", func(t *testing.T) {
		updated, err := env.categories.UpdateCategory(ctx, golang.ID, &dto.CategoryBaseDTO{Title: "Golang"})
		require.NoError(t, err)
		assert.Equal(t, model.RootCategoryID, updated.ParentID)
	})

	t.Run("root keeps parent zero", func(t *testing.T) {
		updated, err := env.categories.UpdateCategory(ctx, model.RootCategoryID, &dto.CategoryBaseDTO{Title: "Uncategorized"})
		require.NoError(t, err)
		assert.Equal(t, uint64(0), updated.ParentID)
		assert.Nil(t, updated.ParentCategory)
	})
}

func TestCategoryService_DeleteGuards(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()
	author := env.author(t)

	tech, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "Tech"})
	require.NoError(t, err)
	golang, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: "Go", ParentID: &tech.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, env.categories.DeleteCategory(ctx, model.RootCategoryID), ErrCategoryIsRoot)
	assert.ErrorIs(t, env.categories.DeleteCategory(ctx, tech.ID), ErrCategoryHasChildren)
	assert.ErrorIs(t, env.categories.DeleteCategory(ctx, 999), ErrCategoryNotFound)

	post, err := env.posts.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Title: "Hi", CategoryID: &golang.ID, Content: "body"})
	require.NoError(t, err)
	assert.ErrorIs(t, env.categories.DeleteCategory(ctx, golang.ID), ErrCategoryHasPosts)

	require.NoError(t, env.posts.DeletePost(ctx, post.ID))
	require.NoError(t, env.categories.DeleteCategory(ctx, golang.ID))
	require.NoError(t, env.categories.DeleteCategory(ctx, tech.ID))

	_, err = env.categories.GetCategory(ctx, tech.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryService_ListAndCandidates(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	for _, title := range []string{"Zeta", "Alpha"} {
		_, err := env.categories.CreateCategory(ctx, &dto.CategoryBaseDTO{Title: title})
		require.NoError(t, err)
	}

	list, err := env.categories.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Nil(t, list[0].ParentCategory)
	require.NotNil(t, list[1].ParentCategory)
	assert.Equal(t, model.RootCategoryID, list[1].ParentCategory.ID)

	candidates, err := env.categories.ListParentCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "Alpha", candidates[0].Title)
	assert.Equal(t, "Zeta", candidates[1].Title)
	assert.Equal(t, "Без категорії", candidates[2].Title)
}

func TestPostService_CreatePublishState(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()
	author := env.author(t)

	draft, err := env.posts.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
		Title:      "Draft",
		CategoryID: util.PtrUint64(model.RootCategoryID),
		Content:    "text",
	})
	require.NoError(t, err)
	assert.False(t, draft.IsPublished)
	assert.Nil(t, draft.PublishedAt)
	require.NotNil(t, draft.Author)
	assert.Equal(t, author.ID, draft.Author.ID)
	require.NotNil(t, draft.CategoryInfo)
	assert.Equal(t, model.RootCategoryID, draft.CategoryInfo.ID)

	live, err := env.posts.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
		Title:       "Live",
		CategoryID:  util.PtrUint64(model.RootCategoryID),
		Content:     "text",
		IsPublished: dto.NewFlexBool(true),
	})
	require.NoError(t, err)
	assert.True(t, live.IsPublished)
	require.NotNil(t, live.PublishedAt)
	assert.True(t, env.clock.Equal(*live.PublishedAt))
}

func TestPostService_UpdatePublishState(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()
	author := env.author(t)
	root := util.PtrUint64(model.RootCategoryID)

	post, err := env.posts.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Title: "P", CategoryID: root, Content: "c"})
	require.NoError(t, err)

	first := env.clock
	updated, err := env.posts.UpdatePost(ctx, post.ID, &dto.PostBaseDTO{Title: "P", CategoryID: root, Content: "c", IsPublished: dto.NewFlexBool(true)})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.True(t, first.Equal(*updated.PublishedAt))

	env.clock = first.Add(time.Hour)
	updated, err = env.posts.UpdatePost(ctx, post.ID, &dto.PostBaseDTO{Title: "P2", CategoryID: root, Content: "c", IsPublished: dto.NewFlexBool(true)})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.True(t, first.Equal(*updated.PublishedAt), "stamp kept while still published")
	assert.Equal(t, "p2", updated.Slug)

	updated, err = env.posts.UpdatePost(ctx, post.ID, &dto.PostBaseDTO{Title: "P2", CategoryID: root, Content: "c"})
	require.NoError(t, err)
	assert.False(t, updated.IsPublished)
	assert.Nil(t, updated.PublishedAt)
}

func TestPostService_Validation(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()
	author := env.author(t)

	t.Run("required fields", func(t *testing.T) {
		_, err := env.posts.CreatePost(ctx, author.ID, &dto.PostBaseDTO{})
		requireValidation(t, err, "title", util.RuleRequired)
		requireValidation(t, err, "category_id", util.RuleRequired)
		requireValidation(t, err, "content", util.RuleRequired)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := env.posts.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Title: "T", CategoryID: util.PtrUint64(42), Content: "c"})
		requireValidation(t, err, "category_id", util.RuleExists)
	})

	t.Run("excerpt too long", func(t *testing.T) {
		excerpt := strings.Repeat("e", 501)
		_, err := env.posts.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
			Title: "T", CategoryID: util.PtrUint64(model.RootCategoryID), Content: "c", Excerpt: &excerpt,
		})
		requireValidation(t, err, "excerpt", util.RuleMax)
	})

	t.Run("category beyond BIGINT range", func(t *testing.T) {
		_, err := env.posts.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Title: "T", CategoryID: util.PtrUint64(math.MaxUint64), Content: "c"})
		requireValidation(t, err, "category_id", util.RuleExists)
	})

	t.Run("unrecognized is_published", func(t *testing.T) {
		var req dto.PostBaseDTO
		require.NoError(t, json.Unmarshal([]byte(`{"title":"T","category_id":1,"content":"c","is_published":"yes"}`), &req))
		_, err := env.posts.CreatePost(ctx, author.ID, &req)
		requireValidation(t, err, "is_published", util.RuleBoolean)
	})

	t.Run("numeric is_published", func(t *testing.T) {
		var req dto.PostBaseDTO
		require.NoError(t, json.Unmarshal([]byte(`{"title":"T","category_id":1,"content":"c","is_published":"1"}`), &req))
		created, err := env.posts.CreatePost(ctx, author.ID, &req)
		require.NoError(t, err)
		assert.True(t, created.IsPublished)
		assert.NotNil(t, created.PublishedAt)
	})

	t.Run("content_raw alias", func(t *testing.T) {
		created, err := env.posts.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
			Title: "T", CategoryID: util.PtrUint64(model.RootCategoryID), ContentRaw: "from alias",
		})
		require.NoError(t, err)
		assert.Equal(t, "from alias", created.ContentRaw)
	})

	t.Run("update not found before validation", func(t *testing.T) {
		_, err := env.posts.UpdatePost(ctx, 999, &dto.PostBaseDTO{})
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPostService_Identity(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()
	req := &dto.PostBaseDTO{Title: "T", CategoryID: util.PtrUint64(model.RootCategoryID), Content: "c"}

	_, err := env.posts.CreatePost(ctx, 0, req)
	assert.ErrorIs(t, err, ErrCallerIdentityMissing)

	_, err = env.posts.CreatePost(ctx, 77, req)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestPostService_GetListDelete(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()
	author := env.author(t)

	post, err := env.posts.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Title: "T", CategoryID: util.PtrUint64(model.RootCategoryID), Content: "c"})
	require.NoError(t, err)

	list, err := env.posts.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Author)
	assert.Equal(t, "author@example.com", list[0].Author.Email)

	require.NoError(t, env.posts.DeletePost(ctx, post.ID))
	_, err = env.posts.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, env.posts.DeletePost(ctx, post.ID), ErrPostNotFound)
}

func TestUserService_CreateUser(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	u, err := env.users.CreateUser(ctx, " Ann ", "Ann@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "ann@example.com", u.Email)

	_, err = env.users.CreateUser(ctx, "Ann", "ann@example.com")
	assert.ErrorIs(t, err, ErrUserExist)

	_, err = env.users.CreateUser(ctx, "Bob", "not-an-email")
	requireValidation(t, err, "email", util.RuleInvalid)

	got, err := env.users.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	_, err = env.users.GetUser(ctx, 999)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestLookupError(t *testing.T) {
	info, ok := LookupError(ErrCategoryHasPosts)
	require.True(t, ok)
	assert.Equal(t, 422, info.Status)

	info, ok = LookupError(errors.Join(errors.New("ctx"), ErrPostNotFound))
	require.True(t, ok)
	assert.Equal(t, 404, info.Status)

	_, ok = LookupError(errors.New("boom"))
	assert.False(t, ok)
}
