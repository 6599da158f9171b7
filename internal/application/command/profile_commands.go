package command

import "hub-service/internal/application/common"

type UpsertProfileCommand struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status" validate:"required" msg:"Status is required"`
	Skills         string `json:"skills" validate:"required" msg:"Skills is required"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// Dates are accepted as YYYY-MM-DD or RFC 3339.
type AddExperienceCommand struct {
	Title       string `json:"title" validate:"required" msg:"Title is required"`
	Company     string `json:"company" validate:"required" msg:"Company is required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required" msg:"From date is required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type AddEducationCommand struct {
	School       string `json:"school" validate:"required" msg:"School is required"`
	Degree       string `json:"degree" validate:"required" msg:"Degree is required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required" msg:"Field of study is required"`
	From         string `json:"from" validate:"required" msg:"From date is required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

type ProfileCommandResult struct {
	Result *common.ProfileResult `json:"result"`
}
