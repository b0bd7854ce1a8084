package api

// Account types as the backend reports them in user_type.
const (
	UserTypeAdmin        = "ADMIN"
	UserTypeCollaborator = "COLLABORATOR"
	UserTypeClient       = "CLIENT"
)

// User is a partner account profile.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`
	CompanyID int    `json:"company_id"`
}

// ProfileUpdate is a partial update to the caller's own profile.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// CollaboratorCreate is the payload for registering a collaborator account.
type CollaboratorCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CollaboratorUpdate is a partial update to a collaborator account.
type CollaboratorUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Reward is a redeemable prize configured by the company.
type Reward struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	PointsRequired int     `json:"points_required"`
}

// RewardCreate is the payload for creating a reward.
type RewardCreate struct {
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	PointsRequired int     `json:"points_required"`
}

// RewardUpdate is a partial update to a reward.
type RewardUpdate struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	PointsRequired *int    `json:"points_required,omitempty"`
}

// TransactionParty names one side of a point transaction.
type TransactionParty struct {
	Name string `json:"name"`
}

// PointTransaction is one point award recorded by the backend.
type PointTransaction struct {
	ID        int              `json:"id"`
	Points    int              `json:"points"`
	Client    TransactionParty `json:"client"`
	AwardedBy TransactionParty `json:"awarded_by"`
	CreatedAt string           `json:"created_at"`
}

// CompanyReport is the aggregate summary computed by the backend.
type CompanyReport struct {
	TotalPointsAwarded   int `json:"total_points_awarded"`
	TotalRewardsRedeemed int `json:"total_rewards_redeemed"`
	UniqueCustomers      int `json:"unique_customers"`
}

// CompanyDetails is the caller's company record.
type CompanyDetails struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	LogoURL   *string  `json:"logo_url"`
	Address   *string  `json:"address"`
	Category  *string  `json:"category"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CompanyUpdate is a partial update to the caller's company record.
type CompanyUpdate struct {
	Name      *string  `json:"name,omitempty"`
	LogoURL   *string  `json:"logo_url,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}
