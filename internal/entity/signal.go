package entity

// SignalCategory agrupa os sinais de intenção por tipo.
type SignalCategory string

const (
	CategoryBuyerActive   SignalCategory = "buyer_active"
	CategoryBuyerPassive  SignalCategory = "buyer_passive"
	CategorySellerActive  SignalCategory = "seller_active"
	CategorySellerPassive SignalCategory = "seller_passive"
	CategoryInvestor      SignalCategory = "investor"
	CategoryTimeline      SignalCategory = "timeline"
	CategoryLocation      SignalCategory = "location"
	CategoryLifeEvent     SignalCategory = "life_event"
	CategoryFinancial     SignalCategory = "financial"
	CategoryNegative      SignalCategory = "negative"
)

// IntentSignal é uma frase do catálogo com peso base e categoria.
// O catálogo é fixo; ajustes de peso entram via ScoringConfig, nunca aqui.
type IntentSignal struct {
	Phrase   string         `json:"phrase"`
	Weight   int            `json:"weight"`
	Category SignalCategory `json:"category"`
}

// IntentCatalog - frases de intenção calibradas para o mercado imobiliário
// de Central Ohio. Pesos negativos marcam concorrentes e opt-outs.
var IntentCatalog = []IntentSignal{
	// === COMPRADOR ATIVO ===
	{"first time homebuyer", 80, CategoryBuyerActive},
	{"first time home buyer", 80, CategoryBuyerActive},
	{"looking for a house", 75, CategoryBuyerActive},
	{"looking for a home", 75, CategoryBuyerActive},
	{"house hunting", 85, CategoryBuyerActive},
	{"home hunting", 85, CategoryBuyerActive},
	{"searching for a home", 80, CategoryBuyerActive},
	{"ready to buy", 90, CategoryBuyerActive},
	{"want to buy a house", 75, CategoryBuyerActive},
	{"want to buy a home", 75, CategoryBuyerActive},
	{"need a realtor", 85, CategoryBuyerActive},
	{"need an agent", 85, CategoryBuyerActive},
	{"looking for a realtor", 85, CategoryBuyerActive},
	{"preapproved", 90, CategoryBuyerActive},
	{"pre-approved", 90, CategoryBuyerActive},
	{"got preapproval", 90, CategoryBuyerActive},
	{"mortgage approved", 95, CategoryBuyerActive},

	// === COMPRADOR PASSIVO ===
	{"thinking about buying", 50, CategoryBuyerPassive},
	{"considering buying", 50, CategoryBuyerPassive},
	{"might buy", 40, CategoryBuyerPassive},
	{"saving for a house", 45, CategoryBuyerPassive},
	{"saving for a home", 45, CategoryBuyerPassive},
	{"down payment", 55, CategoryBuyerPassive},
	{"how much house can i afford", 60, CategoryBuyerPassive},
	{"what can i afford", 55, CategoryBuyerPassive},

	// === VENDEDOR ATIVO ===
	{"listing my house", 90, CategorySellerActive},
	{"listing my home", 90, CategorySellerActive},
	{"selling my house", 85, CategorySellerActive},
	{"selling my home", 85, CategorySellerActive},
	{"ready to sell", 90, CategorySellerActive},
	{"need to sell", 85, CategorySellerActive},
	{"time to sell", 80, CategorySellerActive},
	{"putting house on market", 95, CategorySellerActive},
	{"what is my home worth", 70, CategorySellerActive},
	{"what's my home worth", 70, CategorySellerActive},
	{"home value", 50, CategorySellerActive},

	// === VENDEDOR PASSIVO ===
	{"thinking about selling", 55, CategorySellerPassive},
	{"considering selling", 55, CategorySellerPassive},
	{"might sell", 40, CategorySellerPassive},
	{"should i sell", 50, CategorySellerPassive},
	{"good time to sell", 45, CategorySellerPassive},

	// === INVESTIDOR ===
	{"investment property", 70, CategoryInvestor},
	{"rental property", 65, CategoryInvestor},
	{"looking to invest", 60, CategoryInvestor},
	{"real estate investing", 55, CategoryInvestor},
	{"flip", 50, CategoryInvestor},
	{"fixer upper", 55, CategoryInvestor},
	{"cash flow", 60, CategoryInvestor},
	{"passive income", 45, CategoryInvestor},

	// === TIMELINE (urgência) ===
	{"asap", 70, CategoryTimeline},
	{"as soon as possible", 70, CategoryTimeline},
	{"this month", 65, CategoryTimeline},
	{"next month", 55, CategoryTimeline},
	{"this year", 35, CategoryTimeline},
	{"by spring", 50, CategoryTimeline},
	{"by summer", 50, CategoryTimeline},
	{"before school", 60, CategoryTimeline},
	{"before school starts", 65, CategoryTimeline},
	{"lease is up", 75, CategoryTimeline},
	{"lease ends", 75, CategoryTimeline},
	{"lease ending", 75, CategoryTimeline},

	// === LOCALIZAÇÃO - Central Ohio ===
	{"columbus", 25, CategoryLocation},
	{"powell", 30, CategoryLocation},
	{"dublin", 30, CategoryLocation},
	{"westerville", 30, CategoryLocation},
	{"new albany", 30, CategoryLocation},
	{"hilliard", 30, CategoryLocation},
	{"grove city", 30, CategoryLocation},
	{"gahanna", 30, CategoryLocation},
	{"reynoldsburg", 30, CategoryLocation},
	{"pickerington", 30, CategoryLocation},
	{"delaware", 25, CategoryLocation},
	{"lewis center", 30, CategoryLocation},
	{"worthington", 30, CategoryLocation},
	{"upper arlington", 30, CategoryLocation},
	{"bexley", 30, CategoryLocation},
	{"grandview", 30, CategoryLocation},
	{"german village", 30, CategoryLocation},
	{"short north", 30, CategoryLocation},
	{"clintonville", 30, CategoryLocation},
	{"olde towne east", 25, CategoryLocation},
	{"italian village", 25, CategoryLocation},
	{"franklinton", 25, CategoryLocation},
	{"central ohio", 20, CategoryLocation},
	{"franklin county", 20, CategoryLocation},
	{"ohio", 10, CategoryLocation},

	// === EVENTOS DE VIDA ===
	{"getting married", 60, CategoryLifeEvent},
	{"engaged", 55, CategoryLifeEvent},
	{"having a baby", 65, CategoryLifeEvent},
	{"pregnant", 60, CategoryLifeEvent},
	{"expecting", 55, CategoryLifeEvent},
	{"new job", 50, CategoryLifeEvent},
	{"relocating", 70, CategoryLifeEvent},
	{"moving to", 65, CategoryLifeEvent},
	{"transferred", 70, CategoryLifeEvent},
	{"retiring", 55, CategoryLifeEvent},
	{"downsizing", 60, CategoryLifeEvent},
	{"need more space", 65, CategoryLifeEvent},
	{"outgrown", 60, CategoryLifeEvent},
	{"divorce", 50, CategoryLifeEvent},
	{"empty nester", 55, CategoryLifeEvent},
	{"kids moving out", 50, CategoryLifeEvent},

	// === FINANCEIRO ===
	{"just sold", 75, CategoryFinancial},
	{"inheritance", 50, CategoryFinancial},
	{"bonus", 40, CategoryFinancial},
	{"got a raise", 35, CategoryFinancial},
	{"pay off", 30, CategoryFinancial},
	{"good credit", 45, CategoryFinancial},
	{"credit score", 40, CategoryFinancial},

	// === SINAIS NEGATIVOS (concorrentes / opt-out) ===
	{"i'm a realtor", -100, CategoryNegative},
	{"i am a realtor", -100, CategoryNegative},
	{"as a realtor", -100, CategoryNegative},
	{"as an agent", -100, CategoryNegative},
	{"i'm an agent", -100, CategoryNegative},
	{"licensed agent", -100, CategoryNegative},
	{"real estate agent", -50, CategoryNegative},
	{"keller williams", -80, CategoryNegative},
	{"coldwell banker", -80, CategoryNegative},
	{"remax", -80, CategoryNegative},
	{"re/max", -80, CategoryNegative},
	{"century 21", -80, CategoryNegative},
	{"berkshire hathaway", -80, CategoryNegative},
	{"exp realty", -80, CategoryNegative},
	{"compass real estate", -80, CategoryNegative},
	{"just browsing", -30, CategoryNegative},
	{"not interested", -50, CategoryNegative},
	{"unsubscribe", -100, CategoryNegative},
}
