package relational

import (
	"time"

	"github.com/google/uuid"

	"hub-service/internal/domain/entities"
)

type UserModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Avatar    string
	Password  string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// PostModel stores likes and comments as JSON columns so a post is saved
// and loaded as one document.
type PostModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index;not null"`
	Text      string    `gorm:"not null"`
	Name      string
	Avatar    string
	Likes     []LikeModel    `gorm:"serializer:json"`
	Comments  []CommentModel `gorm:"serializer:json"`
	CreatedAt time.Time      `gorm:"index"`
}

func (PostModel) TableName() string {
	return "posts"
}

type LikeModel struct {
	Id     uuid.UUID `json:"id"`
	UserId uuid.UUID `json:"user"`
}

type CommentModel struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

type ProfileModel struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Company        string
	Website        string
	Location       string
	Status         string   `gorm:"not null"`
	Skills         []string `gorm:"serializer:json"`
	Bio            string
	GithubUsername string
	Social         entities.Social       `gorm:"serializer:json"`
	Experience     []entities.Experience `gorm:"serializer:json"`
	Education      []entities.Education  `gorm:"serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func toUserModel(u *entities.User) *UserModel {
	return &UserModel{
		Id:        u.Id,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Password:  u.Password,
	}
}

func (m *UserModel) toEntity() *entities.User {
	return &entities.User{
		Id:        m.Id,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Name:      m.Name,
		Email:     m.Email,
		Avatar:    m.Avatar,
		Password:  m.Password,
	}
}

func toPostModel(p *entities.Post) *PostModel {
	likes := make([]LikeModel, 0, len(p.Likes))
	for _, l := range p.Likes {
		likes = append(likes, LikeModel{Id: l.Id, UserId: l.UserId})
	}
	comments := make([]CommentModel, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, CommentModel{
			Id:        c.Id,
			UserId:    c.UserId,
			Text:      c.Text,
			Name:      c.Name,
			Avatar:    c.Avatar,
			CreatedAt: c.CreatedAt,
		})
	}
	return &PostModel{
		Id:        p.Id,
		UserId:    p.UserId,
		Text:      p.Text,
		Name:      p.Name,
		Avatar:    p.Avatar,
		Likes:     likes,
		Comments:  comments,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PostModel) toEntity() *entities.Post {
	likes := make([]entities.Like, 0, len(m.Likes))
	for _, l := range m.Likes {
		likes = append(likes, entities.Like{Id: l.Id, UserId: l.UserId})
	}
	comments := make([]entities.Comment, 0, len(m.Comments))
	for _, c := range m.Comments {
		comments = append(comments, entities.Comment{
			Id:        c.Id,
			UserId:    c.UserId,
			Text:      c.Text,
			Name:      c.Name,
			Avatar:    c.Avatar,
			CreatedAt: c.CreatedAt,
		})
	}
	return &entities.Post{
		Id:        m.Id,
		UserId:    m.UserId,
		Text:      m.Text,
		Name:      m.Name,
		Avatar:    m.Avatar,
		Likes:     likes,
		Comments:  comments,
		CreatedAt: m.CreatedAt,
	}
}

func toProfileModel(p *entities.Profile) *ProfileModel {
	return &ProfileModel{
		Id:             p.Id,
		UserId:         p.UserId,
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

func (m *ProfileModel) toEntity() *entities.Profile {
	p := &entities.Profile{
		Id:             m.Id,
		UserId:         m.UserId,
		Company:        m.Company,
		Website:        m.Website,
		Location:       m.Location,
		Status:         m.Status,
		Skills:         m.Skills,
		Bio:            m.Bio,
		GithubUsername: m.GithubUsername,
		Social:         m.Social,
		Experience:     m.Experience,
		Education:      m.Education,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
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
