package provider

// Статусы платежа на стороне провайдера
const (
	PaymentStatusCreated   = "created"
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusCanceled  = "canceled"
)

// Payment - состояние платежа, как его видит провайдер. Только чтение.
type Payment struct {
	ID      string `json:"payment_id"`
	Status  string `json:"status"`
	OrderID string `json:"order_id"`
	Amount  int    `json:"amount"`
}

// Recipient - получатель, которого покупатель ввел на hosted-странице провайдера.
type Recipient struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	ZIP     string `json:"zip"`
	City    string `json:"city"`
	Address string `json:"address"`
	Region  string `json:"region"`
}

// OrderItem - позиция заказа у провайдера. ProductRef - это наш product_id,
// переданный провайдеру как непрозрачная ссылка при создании чекаута.
type OrderItem struct {
	ProductRef string `json:"product_ref"`
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unit_price"`
	Total      int    `json:"total"`
}

// Order - заказ на стороне провайдера. ReferenceID - наш идентификатор покупателя.
type Order struct {
	ID          string      `json:"order_id"`
	ReferenceID string      `json:"reference_id"`
	Total       int         `json:"total"`
	Recipient   Recipient   `json:"recipient"`
	Items       []OrderItem `json:"items"`
}

type CheckoutItem struct {
	ProductRef string `json:"product_ref"`
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unit_price"`
}

type CheckoutRequest struct {
	ReferenceID string         `json:"reference_id"`
	Items       []CheckoutItem `json:"items"`
	SuccessURL  string         `json:"success_url"`
	CancelURL   string         `json:"cancel_url"`
}

type checkoutResponse struct {
	RedirectURL string `json:"redirect_url"`
}
