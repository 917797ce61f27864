package rest

import (
	"time"

	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/service/generation"
	"github.com/heartmarshall/biokit-backend/internal/service/publication"
)

const dateLayout = "2006-01-02"

type accountResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"fullName"`
	CompanyName      string    `json:"companyName"`
	AvatarURL        *string   `json:"avatarUrl,omitempty"`
	SubscriptionPlan string    `json:"subscriptionPlan"`
	ProfileCount     int       `json:"profileCount"`
	ProfileLimit     int       `json:"profileLimit"`
	Role             string    `json:"role,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toAccount(a domain.Account, role domain.Role) accountResponse {
	return accountResponse{
		ID:               a.ID.String(),
		Email:            a.Email,
		FullName:         a.FullName,
		CompanyName:      a.CompanyName,
		AvatarURL:        a.AvatarURL,
		SubscriptionPlan: a.SubscriptionPlan.String(),
		ProfileCount:     a.ProfileCount,
		ProfileLimit:     a.ProfileLimit,
		Role:             role.String(),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

type meResponse struct {
	accountResponse
	CanCreateProfile bool `json:"canCreateProfile"`
}

type profileResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	JobTitle    string    `json:"jobTitle"`
	Website     string    `json:"website"`
	BioNotes    string    `json:"bioNotes"`
	SocialLinks []string  `json:"socialLinks"`
	Slug        string    `json:"slug"`
	MainImage   *string   `json:"mainImage,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProfile(p domain.Profile) profileResponse {
	return profileResponse{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Type:        p.Type.String(),
		Name:        p.Name,
		JobTitle:    p.JobTitle,
		Website:     p.Website,
		BioNotes:    p.BioNotes,
		SocialLinks: p.SocialLinks.Strings(),
		Slug:        p.Slug,
		MainImage:   p.MainImage,
		Published:   p.Published,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// publicProfileResponse omits owner and private notes.
type publicProfileResponse struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	JobTitle    string   `json:"jobTitle,omitempty"`
	Website     string   `json:"website,omitempty"`
	SocialLinks []string `json:"socialLinks"`
	Slug        string   `json:"slug"`
	MainImage   *string  `json:"mainImage,omitempty"`
}

func toPublicProfile(p domain.Profile) publicProfileResponse {
	return publicProfileResponse{
		Type:        p.Type.String(),
		Name:        p.Name,
		JobTitle:    p.JobTitle,
		Website:     p.Website,
		SocialLinks: p.SocialLinks.Strings(),
		Slug:        p.Slug,
		MainImage:   p.MainImage,
	}
}

type biographyResponse struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profileId"`
	Type        string    `json:"bioType"`
	Tone        string    `json:"tone"`
	Content     string    `json:"content"`
	IsLocked    bool      `json:"isLocked"`
	GeneratedAt time.Time `json:"generatedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBiographies(bios []domain.Biography) []biographyResponse {
	out := make([]biographyResponse, 0, len(bios))
	for _, b := range bios {
		out = append(out, biographyResponse{
			ID:          b.ID.String(),
			ProfileID:   b.ProfileID.String(),
			Type:        b.Type.String(),
			Tone:        b.Tone.String(),
			Content:     b.Content,
			IsLocked:    b.IsLocked,
			GeneratedAt: b.GeneratedAt,
			UpdatedAt:   b.UpdatedAt,
		})
	}
	return out
}

type variantFailureResponse struct {
	Kind    string `json:"bioType"`
	Message string `json:"message"`
}

type generateResponse struct {
	Biographies []biographyResponse      `json:"biographies"`
	Failures    []variantFailureResponse `json:"failures"`
}

func toGenerateResult(res generation.GenerateResult) generateResponse {
	failures := make([]variantFailureResponse, 0, len(res.Failures))
	for _, f := range res.Failures {
		failures = append(failures, variantFailureResponse{Kind: f.Kind.String(), Message: f.Message})
	}
	return generateResponse{Biographies: toBiographies(res.Biographies), Failures: failures}
}

type schemaResponse struct {
	ProfileID         string    `json:"profileId"`
	SchemaType        string    `json:"schemaType"`
	SchemaText        string    `json:"schemaText"`
	Validated         bool      `json:"validated"`
	ValidationMessage string    `json:"validationMessage"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func toSchema(s domain.SchemaSnippet) schemaResponse {
	return schemaResponse{
		ProfileID:         s.ProfileID.String(),
		SchemaType:        s.SchemaType.String(),
		SchemaText:        s.SchemaText,
		Validated:         s.Validated,
		ValidationMessage: s.ValidationMessage,
		UpdatedAt:         s.UpdatedAt,
	}
}

type pressKitResponse struct {
	ID              string    `json:"id"`
	ProfileID       string    `json:"profileId"`
	Slug            string    `json:"slug"`
	IncludeShortBio bool      `json:"includeShortBio"`
	IncludeLongBio  bool      `json:"includeLongBio"`
	IncludeImages   bool      `json:"includeImages"`
	IncludeContacts bool      `json:"includeContacts"`
	IsPublished     bool      `json:"isPublished"`
	ViewsCount      int64     `json:"viewsCount"`
	DownloadsCount  int64     `json:"downloadsCount"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toPressKit(k domain.PressKit) pressKitResponse {
	return pressKitResponse{
		ID:              k.ID.String(),
		ProfileID:       k.ProfileID.String(),
		Slug:            k.Slug,
		IncludeShortBio: k.IncludeShortBio,
		IncludeLongBio:  k.IncludeLongBio,
		IncludeImages:   k.IncludeImages,
		IncludeContacts: k.IncludeContacts,
		IsPublished:     k.IsPublished,
		ViewsCount:      k.ViewsCount,
		DownloadsCount:  k.DownloadsCount,
		UpdatedAt:       k.UpdatedAt,
	}
}

type publicProfilePageResponse struct {
	Profile     publicProfileResponse `json:"profile"`
	Biographies []biographyResponse   `json:"biographies"`
	Schema      *string               `json:"schema,omitempty"`
}

func toPublicProfilePage(p *publication.PublicProfile) publicProfilePageResponse {
	resp := publicProfilePageResponse{
		Profile:     toPublicProfile(p.Profile),
		Biographies: toBiographies(p.Biographies),
	}
	if p.Schema != nil {
		resp.Schema = &p.Schema.SchemaText
	}
	return resp
}

type publicPressKitResponse struct {
	Slug            string                `json:"slug"`
	IncludeShortBio bool                  `json:"includeShortBio"`
	IncludeLongBio  bool                  `json:"includeLongBio"`
	IncludeImages   bool                  `json:"includeImages"`
	IncludeContacts bool                  `json:"includeContacts"`
	Profile         publicProfileResponse `json:"profile"`
	Biographies     []biographyResponse   `json:"biographies"`
}

func toPublicPressKit(k *publication.PublicPressKit) publicPressKitResponse {
	return publicPressKitResponse{
		Slug:            k.PressKit.Slug,
		IncludeShortBio: k.PressKit.IncludeShortBio,
		IncludeLongBio:  k.PressKit.IncludeLongBio,
		IncludeImages:   k.PressKit.IncludeImages,
		IncludeContacts: k.PressKit.IncludeContacts,
		Profile:         toPublicProfile(k.Profile),
		Biographies:     toBiographies(k.Biographies),
	}
}

type dailyViewsResponse struct {
	Date           string `json:"date"`
	Views          int    `json:"views"`
	UniqueVisitors int    `json:"uniqueVisitors"`
}

func toDailyViews(rows []domain.DailyViews) []dailyViewsResponse {
	out := make([]dailyViewsResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, dailyViewsResponse{
			Date:           d.Date.Format(dateLayout),
			Views:          d.Views,
			UniqueVisitors: d.UniqueVisitors,
		})
	}
	return out
}

type templateResponse struct {
	ID           string  `json:"id"`
	TemplateType string  `json:"templateType"`
	Name         string  `json:"name"`
	Content      string  `json:"content"`
	Tone         *string `json:"tone,omitempty"`
	Premium      bool    `json:"premium"`
}

func toTemplates(list []domain.Template) []templateResponse {
	out := make([]templateResponse, 0, len(list))
	for _, t := range list {
		resp := templateResponse{
			ID:           t.ID.String(),
			TemplateType: t.TemplateType,
			Name:         t.Name,
			Content:      t.Content,
			Premium:      t.Premium,
		}
		if t.Tone != nil {
			tone := t.Tone.String()
			resp.Tone = &tone
		}
		out = append(out, resp)
	}
	return out
}

type billingRecordResponse struct {
	ID                    string    `json:"id"`
	Amount                *float64  `json:"amount"`
	Currency              string    `json:"currency"`
	Description           string    `json:"description"`
	ExternalTransactionID string    `json:"externalTransactionId,omitempty"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"createdAt"`
}

func toBillingRecords(list []domain.BillingRecord) []billingRecordResponse {
	out := make([]billingRecordResponse, 0, len(list))
	for _, b := range list {
		out = append(out, billingRecordResponse{
			ID:                    b.ID.String(),
			Amount:                b.Amount,
			Currency:              b.Currency,
			Description:           b.Description,
			ExternalTransactionID: b.ExternalTransactionID,
			Status:                b.Status,
			CreatedAt:             b.CreatedAt,
		})
	}
	return out
}

type checkoutResponse struct {
	Plan        string `json:"plan"`
	Configured  bool   `json:"configured"`
	CheckoutURL string `json:"checkoutUrl,omitempty"`
	Message     string `json:"message,omitempty"`
}

type sessionResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
}

func toSession(s *domain.Session) sessionResponse {
	return sessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		UserID:       s.UserID.String(),
		Email:        s.Email,
	}
}
