// Package ui renders the job cards, filter bar, stats, profile,
// favorites and management views, and runs the interactive browser.
// All markup generation lives here; state changes always go through
// the session's intent methods.
package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"joblens/internal/bootstrap"
	"joblens/internal/jobs"
	"joblens/internal/models"
	"joblens/internal/validation"
)

const fallbackLogoURL = "https://api.dicebear.com/8.x/initials/svg?seed=%s"

// RenderJobs prints the visible job cards. isFavorite drives the star
// on each card.
func RenderJobs(result jobs.Result, isFavorite func(id int) bool) {
	if len(result.Visible) == 0 {
		pterm.Println(pterm.Gray("No jobs match your search."))
		return
	}
	for _, job := range result.Visible {
		renderCard(job, isFavorite(job.ID))
	}
}

func renderCard(job models.Job, favorite bool) {
	star := "☆"
	if favorite {
		star = pterm.Yellow("★")
	}

	header := fmt.Sprintf("%s [%d] %s", star, job.ID, pterm.Magenta(job.Company))
	if job.IsNew {
		header += " " + pterm.Cyan("NEW!")
	}
	if job.IsFeatured {
		header += " " + pterm.LightWhite(pterm.BgDarkGray.Sprint("FEATURED"))
	}
	fmt.Println(header)
	fmt.Printf("  %s\n", pterm.Bold.Sprint(job.Position))
	fmt.Printf("  %s · %s · %s\n", job.PostedAt, job.Contract, job.Location)
	fmt.Printf("  %s\n", renderTags(job.Tags()))
	fmt.Println(strings.Repeat("-", 68))
}

func renderTags(tags []string) string {
	chips := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			chips = append(chips, pterm.Cyan("["+t+"]"))
		}
	}
	return strings.Join(chips, " ")
}

// RenderStats prints the match counter line.
func RenderStats(matchCount, totalCount int) {
	fmt.Printf("%s offers found out of %d.\n",
		pterm.Bold.Sprint(matchCount), totalCount)
}

// RenderFilterBar prints the active search text and manual tags.
func RenderFilterBar(search string, tags []string) {
	if search == "" && len(tags) == 0 {
		return
	}
	line := "Filters:"
	if search != "" {
		line += fmt.Sprintf(" search=%q", search)
	}
	if len(tags) > 0 {
		line += " " + renderTags(tags)
	}
	pterm.Println(pterm.Gray(line))
}

// RenderJobDetail prints the full view of one job, the terminal
// equivalent of the detail modal.
func RenderJobDetail(job models.Job) {
	logo := job.Logo
	if logo == "" {
		logo = fmt.Sprintf(fallbackLogoURL, job.Company)
	}

	pterm.DefaultSection.Println(job.Position)
	fmt.Printf("Company:  %s\n", job.Company)
	fmt.Printf("Logo:     %s\n", logo)
	fmt.Printf("Meta:     %s · %s · %s\n", job.PostedAt, job.Contract, job.Location)
	fmt.Printf("Tags:     %s\n", renderTags(job.Tags()))
	if job.Description != "" {
		fmt.Println()
		fmt.Println(bootstrap.PlainText(job.Description))
	}
	fmt.Println()
}

// RenderProfile prints the profile form state and the skill list.
func RenderProfile(p models.Profile) {
	pterm.DefaultSection.Println("Profile")
	fmt.Printf("Name:     %s\n", orEmpty(p.Name))
	fmt.Printf("Position: %s\n", orEmpty(p.Position))
	fmt.Printf("Email:    %s\n", orEmpty(p.Email))
	if len(p.Skills) == 0 {
		fmt.Println("Skills:   (none)")
	} else {
		fmt.Printf("Skills:   %s\n", renderTags(p.Skills))
	}
}

func orEmpty(s string) string {
	if s == "" {
		return pterm.Gray("(not set)")
	}
	return s
}

// RenderFavorites prints the favorites view: count plus one card per
// favorited job, in favorite insertion order.
func RenderFavorites(favorites []models.Job, count int, isFavorite func(id int) bool) {
	pterm.DefaultSection.Printfln("Favorites (%d)", count)
	if len(favorites) == 0 {
		pterm.Println(pterm.Gray("No favorite jobs found."))
		return
	}
	for _, job := range favorites {
		renderCard(job, isFavorite(job.ID))
	}
}

// RenderManageList prints the management list in the fixed-width table
// format, with the store's last-saved time when known.
func RenderManageList(all []models.Job, lastSaved time.Time) {
	pterm.DefaultSection.Println("Manage Jobs")
	if !lastSaved.IsZero() {
		pterm.Println(pterm.Gray("Collection saved " + humanize.Time(lastSaved)))
	}
	if len(all) == 0 {
		pterm.Println(pterm.Gray("No jobs in the collection."))
		return
	}

	fmt.Println(pterm.Bold.Sprintf("%-5s %-30s %-20s %s", "ID", "Position", "Company", "Location"))
	fmt.Println(strings.Repeat("-", 80))
	for _, job := range all {
		fmt.Printf("%-5d %-30s %-20s %s\n",
			job.ID,
			truncateString(job.Position, 29),
			truncateString(job.Company, 19),
			job.Location)
	}
	fmt.Println(strings.Repeat("-", 80))
}

// RenderError prints an operation failure. Validation failures list
// each failing field on its own line.
func RenderError(err error) {
	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			pterm.Error.Printfln("%s: %s", fe.Field, fe.Message)
		}
		return
	}
	pterm.Error.Println(err.Error())
}

// RenderDataUnavailable prints the degraded error state shown when no
// job data could be loaded.
func RenderDataUnavailable() {
	pterm.Warning.Println("Error loading job data. Browsing an empty collection; profile and favorites remain available.")
}

// truncateString truncates a string to the specified length and adds
// "..." if necessary.
func truncateString(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
