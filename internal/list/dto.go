package list

// ItemRef addresses one item of a list. Exactly one of ID, Name and Index
// should be set; ID wins when several are.
type ItemRef struct {
	ID    string
	Name  string
	Index *int
}

func (r ItemRef) IsZero() bool {
	return r.ID == "" && r.Name == "" && r.Index == nil
}

type CreateListRequest struct {
	Action   string  `json:"action"`
	Name     string  `json:"name"`
	List     []Item  `json:"list"`
	Parent   *string `json:"parent"`
	ListName string  `json:"listName"`
	Items    []Item  `json:"items"`
}

type DeleteListRequest struct {
	Name string `json:"name"`
}

type SetParentRequest struct {
	Name   string  `json:"name"`
	Parent *string `json:"parent"`
}

type AddItemsRequest struct {
	ListName string `json:"listName"`
	Item     *Item  `json:"item"`
	Items    []Item `json:"items"`
}

type UpdateItemRequest struct {
	ListName string     `json:"listName"`
	ItemID   string     `json:"itemId"`
	ItemName string     `json:"itemName"`
	Index    *int       `json:"index"`
	Updates  *ItemPatch `json:"updates"`
}

func (r UpdateItemRequest) Ref() ItemRef {
	return ItemRef{ID: r.ItemID, Name: r.ItemName, Index: r.Index}
}

type DeleteItemRequest struct {
	ListName string `json:"listName"`
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Index    *int   `json:"index"`
}

func (r DeleteItemRequest) Ref() ItemRef {
	return ItemRef{ID: r.ItemID, Name: r.ItemName, Index: r.Index}
}

// WriteResponse is the envelope every list mutation answers with.
type WriteResponse struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result"`
}

// ParentLink reports one parent assignment run.
type ParentLink struct {
	Parent  string   `json:"parent"`
	Created bool     `json:"created"`
	Linked  []string `json:"linked"`
	Missing []string `json:"missing"`
}

type ItemsResponse struct {
	List []Item `json:"list"`
}
