package blogService

import (
	"lms/api"
	"lms/models"
)

type BlogService struct {
	client *api.Client
}

func New(client *api.Client) *BlogService {
	return &BlogService{client: client}
}

// Posts fetches all blog posts, newest first.
func (s *BlogService) Posts() ([]models.BlogPost, error) {
	body, err := s.client.Get(api.EndpointBlogPosts(), false)
	if err != nil {
		return nil, err
	}

	var posts []models.BlogPost
	if err := api.UnmarshalList(body, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Post fetches a single blog post.
func (s *BlogService) Post(id uint) (*models.BlogPost, error) {
	body, err := s.client.Get(api.EndpointBlogPost(id), false)
	if err != nil {
		return nil, err
	}

	var post models.BlogPost
	if err := api.UnmarshalData(body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
