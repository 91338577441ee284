package app

import (
	"context"
	"sort"
	"strings"

	"recipebox/internal/model"
)

// In-memory stands-ins for the gorm repositories. They mirror the repository
// contract: (nil, nil) on not-found lookups, rows-affected booleans on
// update/delete.

type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(user *model.User) error {
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

type fakeRecipeStore struct {
	recipes map[string]*model.Recipe
	order   []string
}

func newFakeRecipeStore() *fakeRecipeStore {
	return &fakeRecipeStore{recipes: make(map[string]*model.Recipe)}
}

func (f *fakeRecipeStore) Create(recipe *model.Recipe) error {
	clone := *recipe
	f.recipes[recipe.ID] = &clone
	f.order = append(f.order, recipe.ID)
	return nil
}

func (f *fakeRecipeStore) GetByID(id string) (*model.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (f *fakeRecipeStore) UpdateFields(id, title, content string) (bool, error) {
	r, ok := f.recipes[id]
	if !ok {
		return false, nil
	}
	r.Title = title
	r.Content = content
	return true, nil
}

func (f *fakeRecipeStore) Delete(id string) (bool, error) {
	if _, ok := f.recipes[id]; !ok {
		return false, nil
	}
	delete(f.recipes, id)
	return true, nil
}

func (f *fakeRecipeStore) SearchByTitle(keyword string) ([]model.Recipe, error) {
	var out []model.Recipe
	for _, id := range f.order {
		r, ok := f.recipes[id]
		if !ok {
			continue
		}
		if keyword == "" || strings.Contains(r.Title, keyword) {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeBookmarkStore struct {
	bookmarks map[string]*model.Bookmark
	recipes   *fakeRecipeStore
}

func newFakeBookmarkStore(recipes *fakeRecipeStore) *fakeBookmarkStore {
	return &fakeBookmarkStore{
		bookmarks: make(map[string]*model.Bookmark),
		recipes:   recipes,
	}
}

func bookmarkKey(userID, recipeID string) string {
	return userID + "/" + recipeID
}

func (f *fakeBookmarkStore) Create(bookmark *model.Bookmark) error {
	clone := *bookmark
	f.bookmarks[bookmarkKey(bookmark.UserID, bookmark.RecipeID)] = &clone
	return nil
}

func (f *fakeBookmarkStore) Get(userID, recipeID string) (*model.Bookmark, error) {
	b, ok := f.bookmarks[bookmarkKey(userID, recipeID)]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookmarkStore) Delete(userID, recipeID string) (bool, error) {
	key := bookmarkKey(userID, recipeID)
	if _, ok := f.bookmarks[key]; !ok {
		return false, nil
	}
	delete(f.bookmarks, key)
	return true, nil
}

func (f *fakeBookmarkStore) ListByUserID(userID string) ([]model.BookmarkedRecipe, error) {
	var out []model.BookmarkedRecipe
	for _, b := range f.bookmarks {
		if b.UserID != userID {
			continue
		}
		row := model.BookmarkedRecipe{UserID: b.UserID, RecipeID: b.RecipeID}
		if r, _ := f.recipes.GetByID(b.RecipeID); r != nil {
			row.Title = r.Title
			row.Content = r.Content
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecipeID < out[j].RecipeID })
	return out, nil
}

type fakeRatingStore struct {
	ratings map[string]*model.Rating
	order   []string
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{ratings: make(map[string]*model.Rating)}
}

func (f *fakeRatingStore) Create(rating *model.Rating) error {
	clone := *rating
	f.ratings[rating.ID] = &clone
	f.order = append(f.order, rating.ID)
	return nil
}

func (f *fakeRatingStore) GetByIDAndUserID(ratingID, userID string) (*model.Rating, error) {
	r, ok := f.ratings[ratingID]
	if !ok || r.UserID != userID {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (f *fakeRatingStore) UpdateValue(ratingID, userID string, value int) (bool, error) {
	r, ok := f.ratings[ratingID]
	if !ok || r.UserID != userID {
		return false, nil
	}
	r.Value = value
	return true, nil
}

func (f *fakeRatingStore) DeleteByIDAndUserID(ratingID, userID string) (bool, error) {
	r, ok := f.ratings[ratingID]
	if !ok || r.UserID != userID {
		return false, nil
	}
	delete(f.ratings, ratingID)
	return true, nil
}

func (f *fakeRatingStore) ListByRecipeID(recipeID string) ([]model.Rating, error) {
	var out []model.Rating
	for _, id := range f.order {
		r, ok := f.ratings[id]
		if !ok {
			continue
		}
		if recipeID == "" || r.RecipeID == recipeID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeActivityStore struct {
	activities []model.Activity
}

func (f *fakeActivityStore) ListByUserID(userID string, limit int) ([]model.Activity, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []model.Activity
	for i := len(f.activities) - 1; i >= 0 && len(out) < limit; i-- {
		if f.activities[i].UserID == userID {
			out = append(out, f.activities[i])
		}
	}
	return out, nil
}

type recordingPublisher struct {
	published []model.Activity
}

func (p *recordingPublisher) Publish(_ context.Context, activity model.Activity) error {
	p.published = append(p.published, activity)
	return nil
}

type fakeRecipeCache struct {
	entries map[string]*model.Recipe
}

func newFakeRecipeCache() *fakeRecipeCache {
	return &fakeRecipeCache{entries: make(map[string]*model.Recipe)}
}

func (c *fakeRecipeCache) GetRecipe(_ context.Context, id string) (*model.Recipe, bool, error) {
	r, ok := c.entries[id]
	if !ok {
		return nil, false, nil
	}
	clone := *r
	return &clone, true, nil
}

func (c *fakeRecipeCache) SetRecipe(_ context.Context, recipe *model.Recipe) error {
	clone := *recipe
	c.entries[recipe.ID] = &clone
	return nil
}

func (c *fakeRecipeCache) DeleteRecipe(_ context.Context, id string) error {
	delete(c.entries, id)
	return nil
}
