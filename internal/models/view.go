package models

// ViewState identifies the single active screen of the client.
type ViewState string

const (
	ViewSplash      ViewState = "SPLASH"
	ViewAuth        ViewState = "AUTH"
	ViewHome        ViewState = "HOME"
	ViewBankDetails ViewState = "BANK_DETAILS"
	ViewMap         ViewState = "MAP"
	ViewAddData     ViewState = "ADD_DATA"
)

func ParseView(s string) (ViewState, bool) {
	switch ViewState(s) {
	case ViewSplash, ViewAuth, ViewHome, ViewBankDetails, ViewMap, ViewAddData:
		return ViewState(s), true
	default:
		return ViewHome, false
	}
}

// HomeTab selects which bank list the home screen shows.
type HomeTab string

const (
	TabAll       HomeTab = "ALL"
	TabFavorites HomeTab = "FAVORITES"
)

func ParseTab(s string) (HomeTab, bool) {
	switch HomeTab(s) {
	case TabAll, TabFavorites:
		return HomeTab(s), true
	default:
		return TabAll, false
	}
}
