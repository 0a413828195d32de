package usecase

import (
	"time"

	"vestira/internal/domain/entity"

	"github.com/google/uuid"
)

// View types are the JSON projections returned to clients. Password hashes
// never appear here; partner and comment-author fields are denormalized at
// response time, not at storage time.

// AccountView is the public projection of an account.
type AccountView struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Email       string    `json:"email"`
	Username    string    `json:"username,omitempty"`
	Name        string    `json:"name,omitempty"`
	BrandName   string    `json:"brandName,omitempty"`
	Description string    `json:"description,omitempty"`
	ProfilePic  string    `json:"profilePic,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PartnerPublic is the subset of partner fields attached to reels and orders.
type PartnerPublic struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	BrandName string    `json:"brandName"`
}

// CommentAuthor is the subset of end-user fields attached to comments.
type CommentAuthor struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// CommentView is one entry of a reel's comment sequence.
type CommentView struct {
	ID        uuid.UUID      `json:"id"`
	User      *CommentAuthor `json:"user,omitempty"`
	Text      string         `json:"text"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ReelView is the reel projection, annotated with the viewer's own
// like/save membership when the request is authenticated.
type ReelView struct {
	ID         uuid.UUID      `json:"id"`
	VideoURL   string         `json:"videoUrl"`
	Caption    string         `json:"caption,omitempty"`
	Price      float64        `json:"price"`
	Partner    *PartnerPublic `json:"partner,omitempty"`
	LikesCount int            `json:"likesCount"`
	SavesCount int            `json:"savesCount"`
	IsLiked    bool           `json:"isLiked"`
	IsSaved    bool           `json:"isSaved"`
	Comments   []*CommentView `json:"comments"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// OrderReel is the reel subset denormalized into order projections.
// A nil OrderReel on an OrderView means the item is no longer available.
type OrderReel struct {
	ID       uuid.UUID      `json:"id"`
	VideoURL string         `json:"videoUrl"`
	Caption  string         `json:"caption,omitempty"`
	Price    float64        `json:"price"`
	Partner  *PartnerPublic `json:"partner,omitempty"`
}

// CustomerInfoView mirrors the snapshot captured at order time.
type CustomerInfoView struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// OrderView is the order projection returned to buyers and partners.
type OrderView struct {
	ID           uuid.UUID        `json:"id"`
	Quantity     int              `json:"quantity"`
	CustomerInfo CustomerInfoView `json:"customerInfo"`
	Notes        string           `json:"notes,omitempty"`
	TotalAmount  float64          `json:"totalAmount"`
	Status       string           `json:"status"`
	Reel         *OrderReel       `json:"reel"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// NewAccountView projects an account's public fields.
func NewAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ID:          account.ID,
		Kind:        account.Kind.String(),
		Email:       account.Email,
		Username:    account.Username,
		Name:        account.Name,
		BrandName:   account.BrandName,
		Description: account.Description,
		ProfilePic:  account.ProfilePic,
		CreatedAt:   account.CreatedAt,
	}
}

// NewPartnerPublic projects the partner fields attached to reels and orders.
func NewPartnerPublic(partner *entity.Account) *PartnerPublic {
	if partner == nil {
		return nil
	}

	return &PartnerPublic{
		ID:        partner.ID,
		Name:      partner.Name,
		BrandName: partner.BrandName,
	}
}

// NewReelView projects a reel for the given viewer. A zero viewer id
// (anonymous request) yields IsLiked/IsSaved false.
func NewReelView(reel *entity.Reel, viewerID uuid.UUID) *ReelView {
	if reel == nil {
		return nil
	}

	comments := make([]*CommentView, 0, len(reel.Comments))
	for _, comment := range reel.Comments {
		view := &CommentView{
			ID:        comment.ID,
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
		}
		if comment.Author != nil {
			view.User = &CommentAuthor{
				ID:       comment.Author.ID,
				Username: comment.Author.Username,
				Email:    comment.Author.Email,
			}
		}
		comments = append(comments, view)
	}

	view := &ReelView{
		ID:         reel.ID,
		VideoURL:   reel.VideoURL,
		Caption:    reel.Caption,
		Price:      reel.Price,
		Partner:    NewPartnerPublic(reel.Partner),
		LikesCount: len(reel.Likes),
		SavesCount: len(reel.Saves),
		Comments:   comments,
		CreatedAt:  reel.CreatedAt,
	}

	if viewerID != uuid.Nil {
		view.IsLiked = reel.LikedBy(viewerID)
		view.IsSaved = reel.SavedBy(viewerID)
	}

	return view
}

// NewReelViews projects a slice of reels for the given viewer.
func NewReelViews(reels []*entity.Reel, viewerID uuid.UUID) []*ReelView {
	views := make([]*ReelView, 0, len(reels))
	for _, reel := range reels {
		views = append(views, NewReelView(reel, viewerID))
	}

	return views
}

// NewOrderView projects an order. Orders whose reel was deleted carry a
// nil Reel so clients can render "item no longer available".
func NewOrderView(order *entity.Order) *OrderView {
	if order == nil {
		return nil
	}

	view := &OrderView{
		ID:       order.ID,
		Quantity: order.Quantity,
		CustomerInfo: CustomerInfoView{
			Name:    order.CustomerInfo.Name,
			Email:   order.CustomerInfo.Email,
			Phone:   order.CustomerInfo.Phone,
			Address: order.CustomerInfo.Address,
		},
		Notes:       order.Notes,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
		CreatedAt:   order.CreatedAt,
	}

	if order.Reel != nil {
		view.Reel = &OrderReel{
			ID:       order.Reel.ID,
			VideoURL: order.Reel.VideoURL,
			Caption:  order.Reel.Caption,
			Price:    order.Reel.Price,
			Partner:  NewPartnerPublic(order.Reel.Partner),
		}
	}

	return view
}

// NewOrderViews projects a slice of orders.
func NewOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, NewOrderView(order))
	}

	return views
}
