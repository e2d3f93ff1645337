package dto

type NavItemDTO struct {
	Page   string `json:"page"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

type PageDTO struct {
	Page     string `json:"page"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon"`
}

type ProfileSummaryDTO struct {
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	AvatarUrl string `json:"avatar_url"`
}

type ToastDTO struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type ShellResponse struct {
	Page    PageDTO           `json:"page"`
	Nav     []NavItemDTO      `json:"nav"`
	Profile ProfileSummaryDTO `json:"profile"`
	Theme   string            `json:"theme"`
	Toast   *ToastDTO         `json:"toast"`
}
