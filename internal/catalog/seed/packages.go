package seed

import "tourenzo/pkg/model"

// Packages is the launch catalog, inserted into an empty packages collection.
// Order matters: listings are returned in insertion order.
var Packages = []model.Package{
	{Title: "Maldives Overwater Bliss", Description: "Stay in a 5-star overwater bungalow with private infinity pool and underwater dining experience.", Location: "Maldives", Price: 450000, ImageURL: "assets/images/location1.1.jpg", Duration: "5 Days"},
	{Title: "Private Island Escape", Description: "Rent an entire small island for ultimate privacy, including a personal chef and yacht transfer.", Location: "Maldives", Price: 850000, ImageURL: "assets/images/location1.2.jpg", Duration: "7 Days"},
	{Title: "Coral Reef Safari", Description: "Guided diving tour of the best coral reefs with luxury boat accommodation.", Location: "Maldives", Price: 300000, ImageURL: "assets/images/location1.3.jpg", Duration: "4 Days"},
	{Title: "Zermatt Ski Luxury", Description: "Ski-in/Ski-out chalet with views of the Matterhorn, including spa and helicopter drop-off.", Location: "Switzerland", Price: 500000, ImageURL: "assets/images/location2.1.jpg", Duration: "5 Days"},
	{Title: "Grand Train Tour", Description: "First-class travel on the Glacier Express through the Swiss Alps, staying in Zurich and Geneva.", Location: "Switzerland", Price: 420000, ImageURL: "assets/images/location2.2.jpg", Duration: "8 Days"},
	{Title: "Lucerne Lake Retreat", Description: "Relax by Lake Lucerne in a historic grand hotel with private boat tours.", Location: "Switzerland", Price: 350000, ImageURL: "assets/images/location2.3.jpg", Duration: "4 Days"},
	{Title: "Tokyo & Kyoto VIP", Description: "Experience the neon lights of Tokyo and the traditional temples of Kyoto with a private guide.", Location: "Japan", Price: 550000, ImageURL: "assets/images/location3.1.jpg", Duration: "7 Days"},
	{Title: "Cherry Blossom Special", Description: "A seasonal tour of the best Sakura spots, including a stay in a luxury Ryokan with Onsen.", Location: "Japan", Price: 600000, ImageURL: "assets/images/location3.2.jpg", Duration: "6 Days"},
	{Title: "Osaka Food Tour", Description: "A culinary journey through the street food capital of Japan with celebrity chef meetups.", Location: "Japan", Price: 250000, ImageURL: "assets/images/location3.3.jpg", Duration: "4 Days"},
	{Title: "Dubai Royal Experience", Description: "Penthouse stay at Atlantis The Royal, helicopter city tour, and gold souk private shopping.", Location: "Dubai", Price: 400000, ImageURL: "assets/images/location4.1.jpg", Duration: "5 Days"},
	{Title: "Desert Glamping", Description: "Luxury air-conditioned dome tents in the Arabian desert with falconry and dune bashing.", Location: "Dubai", Price: 250000, ImageURL: "assets/images/location4.2.jpg", Duration: "3 Days"},
	{Title: "Marina Yacht Cruise", Description: "Private yacht party around the Palm Jumeirah with catering and live music.", Location: "Dubai", Price: 300000, ImageURL: "assets/images/location4.3.jpg", Duration: "4 Days"},
	{Title: "Venice & Florence", Description: "Gondola rides in Venice and art tours in Florence, staying in historic palazzos.", Location: "Italy", Price: 480000, ImageURL: "assets/images/location5.1.jpg", Duration: "6 Days"},
	{Title: "Amalfi Coast Yacht", Description: "Sail the Amalfi coast on a private yacht, visiting Positano, Capri, and Sorrento.", Location: "Italy", Price: 750000, ImageURL: "assets/images/location5.2.jpg", Duration: "7 Days"},
	{Title: "Parisian Romance", Description: "Dinner at the Eiffel Tower, private Louvre tour, and stay at The Ritz Paris.", Location: "France", Price: 520000, ImageURL: "assets/images/location6.1.jpg", Duration: "5 Days"},
	{Title: "French Riviera", Description: "Explore Nice, Cannes, and Monaco in a convertible luxury car.", Location: "France", Price: 600000, ImageURL: "assets/images/location6.2.jpg", Duration: "6 Days"},
	{Title: "Manhattan VIP", Description: "Times Square hotel suite, Broadway VIP tickets, and helicopter tour over the Statue of Liberty.", Location: "New York", Price: 450000, ImageURL: "assets/images/location7.1.jpg", Duration: "5 Days"},
	{Title: "The Hamptons Escape", Description: "Relax in a beachfront mansion in The Hamptons with private drivers.", Location: "New York", Price: 500000, ImageURL: "assets/images/location7.2.jpg", Duration: "4 Days"},
	{Title: "Ubud Jungle Villa", Description: "Private pool villa in the jungle, floating breakfast, and private yoga sessions.", Location: "Bali", Price: 200000, ImageURL: "assets/images/location8.1.jpg", Duration: "5 Days"},
	{Title: "Seminyak Beach Club", Description: "Access to VIP beach clubs, surfing lessons, and beachfront luxury suite.", Location: "Bali", Price: 220000, ImageURL: "assets/images/location8.2.jpg", Duration: "6 Days"},
	{Title: "Santorini Sunset", Description: "Cave hotel in Oia with caldera views, wine tasting, and catamaran sunset cruise.", Location: "Greece", Price: 450000, ImageURL: "assets/images/location9.1.jpg", Duration: "5 Days"},
	{Title: "Mykonos Party Week", Description: "VIP access to world-famous beach clubs and private villa stay.", Location: "Greece", Price: 480000, ImageURL: "assets/images/location9.2.jpg", Duration: "7 Days"},
	{Title: "Pyramids & Nile", Description: "Private viewing of the Pyramids of Giza and a 5-star luxury cruise down the Nile river.", Location: "Egypt", Price: 350000, ImageURL: "assets/images/location10.1.jpg", Duration: "6 Days"},
	{Title: "Luxury Cairo", Description: "Stay at the Four Seasons Cairo with guided museum tours and market visits.", Location: "Egypt", Price: 280000, ImageURL: "assets/images/location10.2.jpg", Duration: "4 Days"},
	{Title: "Cappadocia Balloons", Description: "Sleep in a luxury cave hotel and take a sunrise hot air balloon flight.", Location: "Turkey", Price: 320000, ImageURL: "assets/images/location11.1.jpg", Duration: "4 Days"},
	{Title: "Istanbul Historic", Description: "Private tours of Hagia Sophia and Blue Mosque, stay in a Bosphorus-view palace.", Location: "Turkey", Price: 300000, ImageURL: "assets/images/location11.2.jpg", Duration: "5 Days"},
	{Title: "Phuket Luxury Resort", Description: "5-star beachfront resort with island hopping tours to Phi Phi islands.", Location: "Thailand", Price: 250000, ImageURL: "assets/images/location12.1.jpg", Duration: "6 Days"},
	{Title: "Bangkok City Lights", Description: "Rooftop dining experiences, temple tours, and luxury shopping in Siam.", Location: "Thailand", Price: 200000, ImageURL: "assets/images/location12.2.jpg", Duration: "4 Days"},
}
