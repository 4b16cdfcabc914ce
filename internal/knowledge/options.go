package knowledge

// Option is one entry of a wizard dropdown.
type Option struct {
	Value string
	Label string
}

// Services are the project purposes offered in step one.
var Services = []Option{
	{Value: "포트폴리오", Label: "Portfolio"},
	{Value: "브랜드 홍보", Label: "Brand promotion"},
	{Value: "제품 판매", Label: "Product sales"},
	{Value: "정보 전달", Label: "Information"},
	{Value: "학습", Label: "Learning"},
	{Value: "엔터테인먼트", Label: "Entertainment"},
}

// Platforms are the target platforms offered in step one.
var Platforms = []Option{
	{Value: "iOS", Label: "iOS"},
	{Value: "Android", Label: "Android"},
	{Value: "Web", Label: "Web"},
	{Value: "Desktop", Label: "Desktop"},
	{Value: "Tablet", Label: "Tablet"},
	{Value: "Wearable", Label: "Wearable"},
	{Value: "VR", Label: "VR"},
}

// IsService reports whether v is one of Services.
func IsService(v string) bool { return contains(Services, v) }

// IsPlatform reports whether v is one of Platforms.
func IsPlatform(v string) bool { return contains(Platforms, v) }

func contains(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}
