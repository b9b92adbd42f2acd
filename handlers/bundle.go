package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Villa   *VillaHandler
	Quote   *QuoteHandler
	Enquiry *EnquiryHandler
	Planner *PlannerHandler
	Admin   *AdminHandler
	Rates   *RatesHandler
}
