// Package imdbtv builds a Sonarr-compatible custom import list from IMDb's
// popular TV search page. It scrapes the page for titles and IMDb ids,
// resolves each id to a TVDB id through the TVMaze lookup API, and writes
// the result as a JSON array of {"title", "tvdbId"} objects.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or service (e.g., goquery/, tvmaze/, fs/).
package imdbtv
