package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"hub-service/internal/apperrors"
)

var (
	ErrNoProfile       = apperrors.New(apperrors.KindValidation, "There is no profile for this user")
	ErrProfileNotFound = apperrors.New(apperrors.KindNotFound, "Profile not found")
)

type Profile struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         []string
	Bio            string
	GithubUsername string
	Social         Social
	Experience     []Experience
	Education      []Education
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Experience struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	Id           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// ProfileFields are the user-editable scalar fields of a profile.
type ProfileFields struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GithubUsername string
	Social         Social
}

func NewProfile(userID uuid.UUID) *Profile {
	now := time.Now().UTC()
	return &Profile{
		Id:         uuid.New(),
		UserId:     userID,
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (p *Profile) OwnerID() uuid.UUID {
	return p.UserId
}

// Apply replaces the scalar fields. Experience and education are kept.
func (p *Profile) Apply(fields ProfileFields) {
	p.Company = strings.TrimSpace(fields.Company)
	p.Website = strings.TrimSpace(fields.Website)
	p.Location = strings.TrimSpace(fields.Location)
	p.Status = strings.TrimSpace(fields.Status)
	p.Skills = SplitSkills(fields.Skills)
	p.Bio = strings.TrimSpace(fields.Bio)
	p.GithubUsername = strings.TrimSpace(fields.GithubUsername)
	p.Social = fields.Social
	p.UpdatedAt = time.Now().UTC()
}

// SplitSkills turns "go, docker ,k8s" into [go docker k8s].
func SplitSkills(skills string) []string {
	out := []string{}
	for _, skill := range strings.Split(skills, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			out = append(out, skill)
		}
	}
	return out
}

func (p *Profile) AddExperience(exp Experience) Experience {
	exp.Id = uuid.New()
	p.Experience = append([]Experience{exp}, p.Experience...)
	p.UpdatedAt = time.Now().UTC()
	return exp
}

// RemoveExperience drops the entry with id. Unknown ids leave the profile
// unchanged.
func (p *Profile) RemoveExperience(id uuid.UUID) bool {
	for i, exp := range p.Experience {
		if exp.Id == id {
			p.Experience = append(p.Experience[:i:i], p.Experience[i+1:]...)
			p.UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

func (p *Profile) AddEducation(edu Education) Education {
	edu.Id = uuid.New()
	p.Education = append([]Education{edu}, p.Education...)
	p.UpdatedAt = time.Now().UTC()
	return edu
}

// RemoveEducation drops the entry with id. Unknown ids leave the profile
// unchanged.
func (p *Profile) RemoveEducation(id uuid.UUID) bool {
	for i, edu := range p.Education {
		if edu.Id == id {
			p.Education = append(p.Education[:i:i], p.Education[i+1:]...)
			p.UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}
