package fix

// This file is the group specification catalog: static GroupSpec values
// for a handful of well-known FIX 4.2/4.4 repeating groups. It is not a
// complete tag dictionary — callers decoding other groups build their
// own GroupSpec with NewGroupSpec.

// NoNestedPartyIDs is FIX 4.4's nested parties sub-group (tag 802,
// delimited by 523 NestedPartyID), found inside NoPartyIDs instances.
var NoNestedPartyIDs = NewGroupSpec(802, 523, []Tag{
	523, // NestedPartyID
	524, // NestedPartyIDSource
	525, // NestedPartyRole
})

// NoPartyIDs is FIX 4.4's parties group (tag 453, delimited by 448
// PartyID), used to identify brokers, clearing firms, and other parties
// to an order. Each instance may itself carry a NoNestedPartyIDs group.
var NoPartyIDs = NewGroupSpec(453, 448, []Tag{
	448, // PartyID
	447, // PartyIDSource
	452, // PartyRole
}, NoNestedPartyIDs)

// NoRelatedSym is FIX 4.2/4.4's related-symbols group (tag 146,
// delimited by 55 Symbol), used by MarketDataRequest to list the
// instruments a subscription covers.
var NoRelatedSym = NewGroupSpec(146, 55, []Tag{
	55,  // Symbol
	48,  // SecurityID
	22,  // SecurityIDSource
	207, // SecurityExchange
})

// NoMDEntries is FIX 4.2/4.4's market data entries group (tag 268,
// delimited by 269 MDEntryType), carrying the individual price/size
// entries of a market data snapshot or incremental refresh.
var NoMDEntries = NewGroupSpec(268, 269, []Tag{
	269, // MDEntryType
	270, // MDEntryPx
	271, // MDEntrySize
	272, // MDEntryDate
	273, // MDEntryTime
	274, // TickDirection
	275, // MDMkt
	276, // QuoteCondition
	277, // TradeCondition
	278, // MDEntryID
	279, // MDUpdateAction
	280, // MDEntryRefID
	282, // MDEntryOriginator
	283, // LocationID
	284, // DeskID
	286, // OpenCloseSettlFlag
	287, // SellerDays
	288, // MDEntryBuyer
	294, // MDEntrySeller
	295, // MDEntryPositionNo
	299, // QuoteEntryID
	300, // MDEntryType2 (reused tag, context-dependent per FIX 4.4 repeating usage)
	301, // QuoteType
	302, // TradingSessionID
	303, // MDQuoteType
	304, // NetChgPrevDay
	305, // QuoteCancelType
	306, // QuoteRejectReason
	307, // QuoteResponseLevel
	308, // QuoteSetID
	309, // UnderlyingSecurityIDSource
	310, // UnderlyingIssuer
	311, // UnderlyingSecurityDesc
	346, // NumberOfOrders
	625, // TradingSessionSubID
	636, // WorkingIndicator
	763, // SettlType
	810, // MDOriginType
	811, // LastFragment
})

// NoAllocs is FIX 4.2/4.4's allocation instructions group (tag 78,
// delimited by 79 AllocAccount), used by AllocationInstruction to split
// an execution across sub-accounts.
var NoAllocs = NewGroupSpec(78, 79, []Tag{
	79,  // AllocAccount
	80,  // AllocQty
	467, // IndividualAllocID
})
