package browse

import (
	"context"

	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/pager"
)

// CharacterList returns a cursor over the cached character pages.
func CharacterList(repo CharacterRepository, opts ...Option) *pager.Cursor[entities.Character] {
	return pager.New(repo.FetchPage, applyOptions(opts).cursorOptions()...)
}

// FilteredCharacterList returns a cursor over the characters matching
// filter. Its page field is managed by the cursor.
func FilteredCharacterList(repo CharacterRepository, filter entities.CharacterFilter, opts ...Option) *pager.Cursor[entities.Character] {
	fetch := func(ctx context.Context, page int) (entities.Page[entities.Character], error) {
		f := filter
		f.Page = &page
		return repo.FetchFiltered(ctx, f)
	}
	return pager.New(fetch, applyOptions(opts).cursorOptions()...)
}

// LocationList returns a cursor over the cached location pages.
func LocationList(repo LocationRepository, opts ...Option) *pager.Cursor[entities.Location] {
	return pager.New(repo.FetchPage, applyOptions(opts).cursorOptions()...)
}

// FilteredLocationList returns a cursor over the locations matching filter.
func FilteredLocationList(repo LocationRepository, filter entities.LocationFilter, opts ...Option) *pager.Cursor[entities.Location] {
	fetch := func(ctx context.Context, page int) (entities.Page[entities.Location], error) {
		f := filter
		f.Page = &page
		return repo.FetchFiltered(ctx, f)
	}
	return pager.New(fetch, applyOptions(opts).cursorOptions()...)
}
