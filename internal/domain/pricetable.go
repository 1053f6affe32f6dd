package domain

import "encoding/json"

// PriceItem — одна строка прайс-листа (для админки и сериализации).
type PriceItem struct {
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Price       float64 `json:"price"`
}

// PriceTable — двухуровневый прайс: категория -> подкатегория -> цена.
// Порядок добавления позиций сохраняется, чтобы админка видела прайс
// в стабильном порядке.
type PriceTable struct {
	items []PriceItem
	index map[string]map[string]int // категория -> подкатегория -> позиция в items
}

func NewPriceTable() *PriceTable {
	return &PriceTable{index: make(map[string]map[string]int)}
}

// Set добавляет позицию или перезаписывает цену существующей.
func (t *PriceTable) Set(category, subcategory string, price float64) {
	if t.index == nil {
		t.index = make(map[string]map[string]int)
	}
	sub, ok := t.index[category]
	if !ok {
		sub = make(map[string]int)
		t.index[category] = sub
	}
	if i, ok := sub[subcategory]; ok {
		t.items[i].Price = price
		return
	}
	sub[subcategory] = len(t.items)
	t.items = append(t.items, PriceItem{Category: category, Subcategory: subcategory, Price: price})
}

// Get возвращает цену пары (категория, подкатегория) или def, если пары нет.
func (t *PriceTable) Get(category, subcategory string, def float64) float64 {
	if t == nil || t.index == nil {
		return def
	}
	if sub, ok := t.index[category]; ok {
		if i, ok := sub[subcategory]; ok {
			return t.items[i].Price
		}
	}
	return def
}

// All возвращает плоский список позиций в порядке добавления.
func (t *PriceTable) All() []PriceItem {
	if t == nil {
		return nil
	}
	out := make([]PriceItem, len(t.items))
	copy(out, t.items)
	return out
}

// Len — количество позиций.
func (t *PriceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}

// ReplaceAll очищает таблицу и заполняет её заново. Дубликаты пар
// (категория, подкатегория) во входных данных перезаписываются,
// выигрывает последняя.
func (t *PriceTable) ReplaceAll(items []PriceItem) {
	t.items = nil
	t.index = make(map[string]map[string]int)
	for _, it := range items {
		t.Set(it.Category, it.Subcategory, it.Price)
	}
}

// Сериализуется таблица как плоский массив позиций: JSON-объект с
// произвольным порядком ключей потерял бы порядок прайса.

func (t *PriceTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.items)
}

func (t *PriceTable) UnmarshalJSON(b []byte) error {
	var items []PriceItem
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	t.ReplaceAll(items)
	return nil
}
