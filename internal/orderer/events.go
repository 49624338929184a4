package orderer

import "fmt"

// Widget event topics. Publish arguments must match the handler signature.
const (
	TopicCategory = "orderer:category" // string category
	TopicItem     = "orderer:item"     // int list index, -1 clears
	TopicQuantity = "orderer:quantity" // string box text
	TopicAdd      = "orderer:add"
	TopicRemove   = "orderer:remove"
	TopicCheckout = "orderer:checkout"
)

func (o *Orderer) bind() error {
	handlers := []struct {
		topic string
		fn    interface{}
	}{
		{TopicCategory, o.SelectCategory},
		{TopicItem, o.SelectItem},
		{TopicQuantity, o.SetQuantity},
		{TopicAdd, o.AddToOrder},
		{TopicRemove, o.RemoveItem},
		{TopicCheckout, o.Checkout},
	}
	for _, h := range handlers {
		if err := o.bus.Subscribe(h.topic, h.fn); err != nil {
			return fmt.Errorf("bind %s: %w", h.topic, err)
		}
	}
	return nil
}
