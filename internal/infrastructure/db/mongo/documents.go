package mongo

import (
	"time"

	"github.com/google/uuid"

	"hub-service/internal/domain/entities"
)

// Documents use the UUID string as _id.

type userDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Avatar    string    `bson:"avatar"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"date"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type postDocument struct {
	ID        string            `bson:"_id"`
	User      string            `bson:"user"`
	Text      string            `bson:"text"`
	Name      string            `bson:"name"`
	Avatar    string            `bson:"avatar"`
	Likes     []likeDocument    `bson:"likes"`
	Comments  []commentDocument `bson:"comments"`
	CreatedAt time.Time         `bson:"date"`
}

type likeDocument struct {
	ID   string `bson:"_id"`
	User string `bson:"user"`
}

type commentDocument struct {
	ID        string    `bson:"_id"`
	User      string    `bson:"user"`
	Text      string    `bson:"text"`
	Name      string    `bson:"name"`
	Avatar    string    `bson:"avatar"`
	CreatedAt time.Time `bson:"date"`
}

type profileDocument struct {
	ID             string                `bson:"_id"`
	User           string                `bson:"user"`
	Company        string                `bson:"company,omitempty"`
	Website        string                `bson:"website,omitempty"`
	Location       string                `bson:"location,omitempty"`
	Status         string                `bson:"status"`
	Skills         []string              `bson:"skills"`
	Bio            string                `bson:"bio,omitempty"`
	GithubUsername string                `bson:"githubusername,omitempty"`
	Social         entities.Social       `bson:"social"`
	Experience     []entities.Experience `bson:"experience"`
	Education      []entities.Education  `bson:"education"`
	CreatedAt      time.Time             `bson:"date"`
	UpdatedAt      time.Time             `bson:"updated_at"`
}

// parseID maps a stored id back to a UUID; malformed ids become uuid.Nil.
func parseID(id string) uuid.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}
	return parsed
}

func newUserDocument(u *entities.User) userDocument {
	return userDocument{
		ID:        u.Id.String(),
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDocument) toEntity() *entities.User {
	return &entities.User{
		Id:        parseID(d.ID),
		Name:      d.Name,
		Email:     d.Email,
		Avatar:    d.Avatar,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func newPostDocument(p *entities.Post) postDocument {
	likes := make([]likeDocument, 0, len(p.Likes))
	for _, l := range p.Likes {
		likes = append(likes, likeDocument{ID: l.Id.String(), User: l.UserId.String()})
	}
	comments := make([]commentDocument, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, commentDocument{
			ID:        c.Id.String(),
			User:      c.UserId.String(),
			Text:      c.Text,
			Name:      c.Name,
			Avatar:    c.Avatar,
			CreatedAt: c.CreatedAt,
		})
	}
	return postDocument{
		ID:        p.Id.String(),
		User:      p.UserId.String(),
		Text:      p.Text,
		Name:      p.Name,
		Avatar:    p.Avatar,
		Likes:     likes,
		Comments:  comments,
		CreatedAt: p.CreatedAt,
	}
}

func (d postDocument) toEntity() *entities.Post {
	likes := make([]entities.Like, 0, len(d.Likes))
	for _, l := range d.Likes {
		likes = append(likes, entities.Like{Id: parseID(l.ID), UserId: parseID(l.User)})
	}
	comments := make([]entities.Comment, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, entities.Comment{
			Id:        parseID(c.ID),
			UserId:    parseID(c.User),
			Text:      c.Text,
			Name:      c.Name,
			Avatar:    c.Avatar,
			CreatedAt: c.CreatedAt,
		})
	}
	return &entities.Post{
		Id:        parseID(d.ID),
		UserId:    parseID(d.User),
		Text:      d.Text,
		Name:      d.Name,
		Avatar:    d.Avatar,
		Likes:     likes,
		Comments:  comments,
		CreatedAt: d.CreatedAt,
	}
}

func newProfileDocument(p *entities.Profile) profileDocument {
	return profileDocument{
		ID:             p.Id.String(),
		User:           p.UserId.String(),
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Status:         p.Status,
		Skills:         p.Skills,
		Bio:            p.Bio,
		GithubUsername: p.GithubUsername,
		Social:         p.Social,
		Experience:     p.Experience,
		Education:      p.Education,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (d profileDocument) toEntity() *entities.Profile {
	p := &entities.Profile{
		Id:             parseID(d.ID),
		UserId:         parseID(d.User),
		Company:        d.Company,
		Website:        d.Website,
		Location:       d.Location,
		Status:         d.Status,
		Skills:         d.Skills,
		Bio:            d.Bio,
		GithubUsername: d.GithubUsername,
		Social:         d.Social,
		Experience:     d.Experience,
		Education:      d.Education,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []entities.Experience{}
	}
	if p.Education == nil {
		p.Education = []entities.Education{}
	}
	return p
}
