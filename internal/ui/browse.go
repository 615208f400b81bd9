package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"joblens/internal/app"
	"joblens/internal/jobs"
	"joblens/internal/models"
)

// Browser runs the interactive view: a command loop that dispatches
// user gestures into the session and re-renders from the derived state
// the session publishes.
type Browser struct {
	session   *app.Session
	in        *bufio.Scanner
	lastSaved func() time.Time
}

// NewBrowser creates the interactive browser. lastSaved may be nil when
// the backend cannot report it.
func NewBrowser(session *app.Session, in io.Reader, lastSaved func() time.Time) *Browser {
	return &Browser{
		session:   session,
		in:        bufio.NewScanner(in),
		lastSaved: lastSaved,
	}
}

// Run reads commands until quit or EOF. Every mutation triggers the
// session's recompute; the subscription keeps the stats line current.
func (b *Browser) Run() {
	b.session.Subscribe(func(r jobs.Result) {
		RenderStats(r.MatchCount, r.TotalCount)
	})

	b.renderList()
	fmt.Println(`Type "help" for commands.`)

	for {
		fmt.Print("> ")
		if !b.in.Scan() {
			return
		}
		line := strings.TrimSpace(b.in.Text())
		if line == "" {
			continue
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			b.printHelp()
		case "list":
			b.renderList()
		case "search":
			b.session.SetSearch(arg)
			b.renderList()
		case "tag":
			b.session.AddTag(arg)
			b.renderList()
		case "untag":
			b.session.RemoveTag(arg)
			b.renderList()
		case "clear":
			b.session.ClearFilters()
			b.renderList()
		case "view":
			b.viewJob(arg)
		case "fav":
			b.toggleFavorite(arg)
		case "favs":
			RenderFavorites(b.session.FavoriteJobs(), b.session.FavoriteCount(), b.session.IsFavorite)
		case "profile":
			b.profileCommand(arg)
		case "skill":
			b.skillCommand(arg)
		case "manage":
			b.renderManage()
		case "add":
			b.addJob()
		case "edit":
			b.editJob(arg)
		case "del":
			b.deleteJob(arg)
		default:
			pterm.Warning.Printfln("unknown command %q, type \"help\"", cmd)
		}
	}
}

func (b *Browser) renderList() {
	RenderFilterBar(b.session.SearchText(), b.session.ManualTags())
	RenderJobs(b.session.Current(), b.session.IsFavorite)
}

func (b *Browser) renderManage() {
	var saved time.Time
	if b.lastSaved != nil {
		saved = b.lastSaved()
	}
	RenderManageList(b.session.Jobs(), saved)
}

func (b *Browser) viewJob(arg string) {
	id, ok := b.parseID(arg)
	if !ok {
		return
	}
	job, found := b.session.FindJob(id)
	if !found {
		RenderError(fmt.Errorf("view job %d: %w", id, jobs.ErrNotFound))
		return
	}
	RenderJobDetail(job)
}

func (b *Browser) toggleFavorite(arg string) {
	id, ok := b.parseID(arg)
	if !ok {
		return
	}
	state, err := b.session.ToggleFavorite(id)
	if err != nil {
		RenderError(err)
		return
	}
	if state {
		pterm.Success.Printfln("Job %d added to favorites (%d total)", id, b.session.FavoriteCount())
	} else {
		pterm.Info.Printfln("Job %d removed from favorites (%d total)", id, b.session.FavoriteCount())
	}
}

func (b *Browser) profileCommand(arg string) {
	if arg != "edit" {
		RenderProfile(b.session.Profile())
		return
	}

	p := b.session.Profile()
	name := b.prompt("Name", p.Name)
	position := b.prompt("Position", p.Position)
	email := b.prompt("Email", p.Email)
	if err := b.session.SaveProfile(name, position, email); err != nil {
		RenderError(err)
		return
	}
	pterm.Success.Println("Profile saved")
}

func (b *Browser) skillCommand(arg string) {
	verb, skill := splitCommand(arg)
	switch verb {
	case "add":
		added, err := b.session.AddSkill(skill)
		if err != nil {
			RenderError(err)
		} else if !added {
			pterm.Warning.Println("skill is empty or already present")
		} else {
			b.renderList()
		}
	case "rm":
		if err := b.session.RemoveSkill(skill); err != nil {
			RenderError(err)
		} else {
			b.renderList()
		}
	default:
		pterm.Warning.Println(`usage: skill add <name> | skill rm <name>`)
	}
}

func (b *Browser) addJob() {
	draft := b.promptDraft(models.JobDraft{})
	job, err := b.session.CreateJob(draft)
	if err != nil {
		RenderError(err)
		return
	}
	pterm.Success.Printfln("Job %d created", job.ID)
}

func (b *Browser) editJob(arg string) {
	id, ok := b.parseID(arg)
	if !ok {
		return
	}
	existing, found := b.session.FindJob(id)
	if !found {
		RenderError(fmt.Errorf("edit job %d: %w", id, jobs.ErrNotFound))
		return
	}

	draft := b.promptDraft(models.JobDraft{
		Company:     existing.Company,
		Logo:        existing.Logo,
		IsNew:       existing.IsNew,
		IsFeatured:  existing.IsFeatured,
		Position:    existing.Position,
		Role:        existing.Role,
		Level:       existing.Level,
		PostedAt:    existing.PostedAt,
		Contract:    existing.Contract,
		Location:    existing.Location,
		Skills:      existing.Skills,
		Description: existing.Description,
	})
	if _, err := b.session.UpdateJob(id, draft); err != nil {
		RenderError(err)
		return
	}
	pterm.Success.Printfln("Job %d updated", id)
}

func (b *Browser) deleteJob(arg string) {
	id, ok := b.parseID(arg)
	if !ok {
		return
	}
	confirm := b.prompt(fmt.Sprintf("Delete job %d? (y/N)", id), "")
	if !strings.EqualFold(confirm, "y") {
		return
	}
	if err := b.session.DeleteJob(id); err != nil {
		RenderError(err)
		return
	}
	pterm.Success.Printfln("Job %d deleted", id)
}

func (b *Browser) promptDraft(d models.JobDraft) models.JobDraft {
	d.Company = b.prompt("Company", d.Company)
	d.Position = b.prompt("Position", d.Position)
	d.Logo = b.prompt("Logo URL (optional)", d.Logo)
	d.Contract = b.prompt("Contract", d.Contract)
	d.Location = b.prompt("Location", d.Location)
	d.Role = b.prompt("Role", d.Role)
	d.Level = b.prompt("Level", d.Level)
	d.Skills = splitSkills(b.prompt("Skills (comma separated)", strings.Join(d.Skills, ", ")))
	d.Description = b.prompt("Description", d.Description)
	return d
}

// prompt reads one line, keeping the current value on empty input.
func (b *Browser) prompt(label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !b.in.Scan() {
		return current
	}
	text := strings.TrimSpace(b.in.Text())
	if text == "" {
		return current
	}
	return text
}

func (b *Browser) parseID(arg string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		pterm.Warning.Println("a numeric job id is required")
		return 0, false
	}
	return id, true
}

func (b *Browser) printHelp() {
	fmt.Println(`Commands:
  list                 show the filtered job list
  search <text>        set the search text (empty to clear)
  tag <tag>            add a manual filter tag
  untag <tag>          remove a manual filter tag
  clear                clear search text and manual tags
  view <id>            show job details
  fav <id>             toggle favorite
  favs                 show favorites
  profile              show profile
  profile edit         edit name/position/email
  skill add <name>     add a profile skill (skills filter the list)
  skill rm <name>      remove a profile skill
  manage               show the management list
  add                  create a job
  edit <id>            edit a job
  del <id>             delete a job
  quit                 exit`)
}

func splitCommand(line string) (cmd, arg string) {
	parts := strings.SplitN(line, " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

func splitSkills(s string) []string {
	var skills []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}
