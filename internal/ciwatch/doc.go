// Package ciwatch queries the GitHub Actions REST API for the most
// recent workflow run of a repository. Authentication is ambient: the
// runs-listing endpoint is public for public repositories.
package ciwatch
