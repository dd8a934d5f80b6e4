package procurement

// Items is an immutable snapshot of requested material items for one run.
type Items struct {
	Records []*Item
}

// Item is a single requested material item as parsed from the bill of materials.
type Item struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name,omitempty"`
	Specification string  `json:"specification,omitempty"`
	Category      string  `json:"category,omitempty"`
	Quantity      float64 `json:"quantity,omitempty"`
	Unit          string  `json:"unit,omitempty"`
	// DeliveryDate is kept as uploaded. Parsing happens at classification
	// time so a single malformed row cannot abort the whole load.
	DeliveryDate string `json:"delivery_date,omitempty"`
	DrawingRef   string `json:"drawing_ref,omitempty"`
}

func (i *Items) Len() int {
	return len(i.Records)
}

func (i *Items) FindByID(id string) *Item {
	for _, item := range i.Records {
		if item.ID == id {
			return item
		}
	}
	return nil
}
