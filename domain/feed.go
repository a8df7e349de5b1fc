package domain

var (
	MessageSuccessGetFeed = "feed retrieved successfully"
	MessageFailedGetFeed  = "failed to retrieve feed"
)
