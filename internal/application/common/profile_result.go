package common

import (
	"time"

	"github.com/google/uuid"

	"hub-service/internal/domain/entities"
)

type ProfileResult struct {
	Id             uuid.UUID             `json:"id"`
	User           ProfileOwnerResult    `json:"user"`
	Company        string                `json:"company,omitempty"`
	Website        string                `json:"website,omitempty"`
	Location       string                `json:"location,omitempty"`
	Status         string                `json:"status"`
	Skills         []string              `json:"skills"`
	Bio            string                `json:"bio,omitempty"`
	GithubUsername string                `json:"githubusername,omitempty"`
	Social         entities.Social       `json:"social"`
	Experience     []entities.Experience `json:"experience"`
	Education      []entities.Education  `json:"education"`
	CreatedAt      time.Time             `json:"date"`
}

// ProfileOwnerResult is the owner reference embedded in a profile.
type ProfileOwnerResult struct {
	Id     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}
