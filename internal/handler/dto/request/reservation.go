package request

type SubmitReservationRequest struct {
	PackageID             *string         `json:"package_id" binding:"omitempty,uuid"`
	CustomerFullName      *string         `json:"customer_full_name" binding:"omitempty,max=255"`
	CustomerAddress       *string         `json:"customer_address" binding:"omitempty,max=1000"`
	CustomerContactNumber *string         `json:"customer_contact_number" binding:"omitempty,phone"`
	CustomerEmail         *string         `json:"customer_email" binding:"omitempty,email,max=255"`
	EventType             string          `json:"event_type" binding:"required,max=255"`
	EventDate             string          `json:"event_date" binding:"required,datetime=2006-01-02"`
	EventTime             *string         `json:"event_time" binding:"omitempty,datetime=15:04"`
	Venue                 string          `json:"venue" binding:"required,max=255"`
	GuestCount            *int            `json:"guest_count" binding:"required,min=1,max=2147483647"`
	Customization         *string         `json:"customization"`
	TotalAmount           *float64        `json:"total_amount" binding:"omitempty,min=0,max=999999999999.99"`
	SelectedTableType     *string         `json:"selected_table_type" binding:"omitempty,max=255"`
	SelectedChairType     *string         `json:"selected_chair_type" binding:"omitempty,max=255"`
	SelectedFoods         []FoodSelection `json:"selected_foods" binding:"omitempty,dive"`
	CustomizationNotes    *string         `json:"customization_notes"`
}

type FoodSelection struct {
	Name  *string  `json:"name" binding:"omitempty,max=255"`
	Price *float64 `json:"price" binding:"omitempty,min=0,max=999999999999.99"`
}

// Normalize treats empty optional strings as absent.
func (r *SubmitReservationRequest) Normalize() {
	for _, p := range []**string{
		&r.PackageID,
		&r.CustomerFullName,
		&r.CustomerAddress,
		&r.CustomerContactNumber,
		&r.CustomerEmail,
		&r.EventTime,
		&r.Customization,
		&r.SelectedTableType,
		&r.SelectedChairType,
		&r.CustomizationNotes,
	} {
		*p = nilIfEmpty(*p)
	}
	for i := range r.SelectedFoods {
		r.SelectedFoods[i].Name = nilIfEmpty(r.SelectedFoods[i].Name)
	}
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
