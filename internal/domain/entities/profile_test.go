package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"go", "docker", "k8s"}, SplitSkills(" go, docker ,,k8s "))
	assert.Equal(t, []string{}, SplitSkills(""))
}

func TestApplyKeepsSubEntries(t *testing.T) {
	profile := NewProfile(uuid.New())
	exp := profile.AddExperience(Experience{Title: "Dev", Company: "Acme", From: time.Now()})

	profile.Apply(ProfileFields{Status: " Developer ", Skills: "go,sql"})

	assert.Equal(t, "Developer", profile.Status)
	assert.Equal(t, []string{"go", "sql"}, profile.Skills)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, exp.Id, profile.Experience[0].Id)
}

func TestExperienceAddRemove(t *testing.T) {
	profile := NewProfile(uuid.New())
	older := profile.AddExperience(Experience{Title: "Junior"})
	newer := profile.AddExperience(Experience{Title: "Senior"})

	require.Len(t, profile.Experience, 2)
	assert.Equal(t, newer.Id, profile.Experience[0].Id)

	assert.False(t, profile.RemoveExperience(uuid.New()))
	assert.Len(t, profile.Experience, 2)

	assert.True(t, profile.RemoveExperience(older.Id))
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, newer.Id, profile.Experience[0].Id)
}

func TestEducationAddRemove(t *testing.T) {
	profile := NewProfile(uuid.New())
	edu := profile.AddEducation(Education{School: "42", Degree: "Dev", FieldOfStudy: "CS"})

	assert.NotEqual(t, uuid.Nil, edu.Id)
	assert.True(t, profile.RemoveEducation(edu.Id))
	assert.Empty(t, profile.Education)
	assert.False(t, profile.RemoveEducation(edu.Id))
}
