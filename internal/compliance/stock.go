package compliance

// Stock covers exchange-traded products under the online bond platform (OBPP)
// advertisement code applied by NSE/BSE/MCA.
var Stock = &Guideline{
	Code: "stock",
	Name: "NSE/BSE/MCA (Stock Market)",
	Categories: []Category{
		{
			Name: "Forms of Communication",
			Fields: []Field{
				{
					Name:        "is_advertisement",
					Description: "Is this an advertisement?",
					Pass:        "This content is clearly an advertisement (format & intent recognized).",
					Fail:        "Ensure the communication mode is labeled and consistent (e.g., 'Advertisement' header or appropriate metadata).",
					Check:       assume(true, 0.5),
				},
			},
		},
		{
			Name: "Disclosures",
			Fields: []Field{
				{
					Name:        "name_address_reg",
					Description: "Is name, address, and SEBI registration present?",
					Pass:        "SEBI registration number and required issuer identity are clearly present.",
					Fail:        "Add the intermediary's name, address and SEBI Registration No. (e.g., 'SEBI Reg. No: INZ00012345') in a readable location.",
					Check:       requires(0.99, 0.0, sebiRegPattern),
				},
				{
					Name:        "accurate_info",
					Description: "Is information accurate?",
					Pass:        "Key facts (rates, numbers, names) appear consistent and plausible.",
					Fail:        "Verify and correct any factual inaccuracies (dates, percentages, product names) before publishing.",
					Check:       assume(true, 0.5),
				},
				{
					Name:        "standard_warning_present",
					Description: "Is standard warning present?",
					Pass:        "Standard risk disclaimer present (e.g., 'Mutual funds are subject to market risk').",
					Fail:        "Insert the mandatory risk disclaimer; recommended phrasing: 'Mutual funds are subject to market risk. Please read the offer document carefully.'",
					Check:       requires(0.9, 0.0, warningPatterns...),
				},
				{
					Name:        "warning_font_size_ok",
					Description: "Is warning font size adequate?",
					Pass:        "Warning/disclaimer text appears to meet prominence/readability requirements.",
					Fail:        "Increase the disclaimer font size and prominence so it is legible and not visually de-emphasized (follow brand/OBPP specs).",
					Check:       assume(false, 0.0),
				},
				{
					Name:        "av_duration_ok",
					Description: "Is AV duration compliant?",
					Pass:        "AV disclaimers meet duration/word-count thresholds (e.g., visible/readable for required seconds).",
					Fail:        "Ensure AV disclaimers are displayed for the regulator-prescribed duration and readable when spoken/displayed.",
					Check:       assume(false, 0.0),
				},
				{
					Name:        "regional_languages_used",
					Description: "Are regional languages used where required?",
					Pass:        "Regional language warnings provided as required.",
					Fail:        "Provide region-appropriate language versions of the mandatory warnings or a clear link to the translation.",
					Check:       requires(0.8, 0.0, regionalLangPattern),
				},
				{
					Name:        "hyperlink_for_sms_ok",
					Description: "Is hyperlink for SMS compliant?",
					Pass:        "Hyperlinks (or SMS short links) to full terms/offer documents are present and valid.",
					Fail:        "Add a valid hyperlink or short URL (SMS-compliant) to the full offer document or disclosures.",
					Check:       requires(0.85, 0.0, hyperlinkPattern, smsHyperlinkPattern),
				},
				{
					Name:        "product_details_disclosed",
					Description: "Are product details disclosed?",
					Pass:        "Product-level details (issuer, tenor, rating, YTM/coupon) are disclosed.",
					Fail:        "Disclose required product details: issuer, tenor, rating, yield-to-maturity or equivalent fields.",
					Check:       requires(0.85, 0.0, productFieldsPattern),
				},
				{
					Name:        "exchange_logo_absent",
					Description: "Is exchange logo absent or authorized?",
					Pass:        "No stock-exchange logo wrongly used in the creative (no misleading affiliation).",
					Fail:        "Remove exchange logos or obtain explicit authorization; do not imply listing/endorsement by an exchange.",
					Check:       forbids(0.8, 0.2, exchangeLogoPattern),
				},
				{
					Name:        "claims_sourced",
					Description: "Are claims sourced?",
					Pass:        "Claims include sources (surveys, data) where applicable.",
					Fail:        "Add verifiable sources for claims (e.g., 'Source: XYZ survey, 2024') or remove unsupported claims.",
					Check:       requires(0.8, 0.0, claimsSourcedPattern),
				},
				{
					Name:        "simple_language_used",
					Description: "Is simple language used?",
					Pass:        "Language is plain and accessible to retail investors.",
					Fail:        "Rewrite complex sentences into simple, plain-language statements targeted at the retail investor.",
					Check:       simpleLanguage(0.6, 0.5, true),
				},
				{
					Name:        "fixed_returns_warning_present",
					Description: "Is fixed returns warning present if applicable?",
					Pass:        "If fixed/assured return language used, an explicit warning and context exists.",
					Fail:        "Remove any claim of 'fixed' or 'assured' returns, or explicitly qualify and back with permitted wording and disclosures.",
					Check:       requires(0.95, 0.0, fixedReturnPatterns...),
				},
				{
					Name:        "no_other_logos_without_approval",
					Description: "No unauthorized logos?",
					Pass:        "No third-party logos used without explicit approval.",
					Fail:        "Remove or obtain approvals for third-party logos shown in the creative.",
					Check:       assume(true, 0.4),
				},
			},
		},
		{
			Name: "Prohibitions",
			Fields: []Field{
				{
					Name:        "no_illegal_or_false",
					Description: "No illegal or false statements?",
					Pass:        "No illegal or false statements detected.",
					Fail:        "Remove statements that are false, illegal or misleading and re-run compliance checks.",
					Check:       assume(true, 0.5),
				},
				{
					Name:        "no_exaggerated_slogans",
					Description: "No exaggerated slogans?",
					Pass:        "No exaggerated slogans (e.g., 'best ever') detected.",
					Fail:        "Remove exaggerated marketing slogans; use objective, verifiable phrasing instead.",
					Check:       forbids(0.9, 0.7, exaggerationPatterns...),
				},
				{
					Name:        "no_superlatives_unsubstantiated",
					Description: "No unsubstantiated superlatives?",
					Pass:        "No unsubstantiated superlatives (#1, 'leading') present.",
					Fail:        "Remove superlatives or add evidence/sources to substantiate any ranking claims.",
					Check:       forbids(0.9, 0.7, superlativePattern),
				},
				{
					Name:        "no_inflation_beating_claims",
					Description: "No inflation-beating claims?",
					Pass:        "No claims of 'beat inflation' or similar present.",
					Fail:        "Remove or substantiate any claim that promises to 'beat inflation'; these are sensitive and must be supported with evidence.",
					Check:       forbids(0.9, 0.7, inflationBeatPattern),
				},
				{
					Name:        "no_discrediting_competitors",
					Description: "No discrediting competitors?",
					Pass:        "No discrediting of competitors detected.",
					Fail:        "Do not disparage competitors; remove comparative language that discredits other firms/products.",
					Check:       forbids(0.85, 0.7, discreditPattern),
				},
				{
					Name:        "no_celebrities",
					Description: "No unauthorized celebrities?",
					Pass:        "No celebrity endorsement detected (or authorizations exist).",
					Fail:        "Remove celebrity imagery/text unless documented approvals and disclosures are attached.",
					Check:       forbids(0.9, 0.7, celebrityPatterns...),
				},
				{
					Name:        "no_assured_returns",
					Description: "No assured returns?",
					Pass:        "No assured / guaranteed returns claimed.",
					Fail:        "Delete statements implying assured/guaranteed returns; ensure disclaimers are present if any returns are discussed.",
					Check:       forbids(0.9, 0.7, assurancePattern),
				},
				{
					Name:        "no_sebi_logo",
					Description: "No unauthorized SEBI logo?",
					Pass:        "SEBI logo is not used incorrectly.",
					Fail:        "Remove any misuse of SEBI's name/logo or obtain explicit permission.",
					Check:       forbids(0.9, 0.7, sebiLogoPattern),
				},
			},
		},
		{
			Name: "Other Compliances",
			Fields: []Field{
				{
					Name:        "approvals_required_or_template",
					Description: "Approvals or templates used?",
					Pass:        "Approvals and templates used where required.",
					Fail:        "Follow the mandated approval flow; seek prior approvals per OBPP before publishing.",
					Check:       requires(0.8, 0.0, approvalsPattern),
				},
				{
					Name:        "undertakings_provided",
					Description: "Undertakings provided?",
					Pass:        "Required undertakings are included.",
					Fail:        "Add required undertakings and declarations from the responsible signatory.",
					Check:       requires(0.8, 0.0, undertakingPattern),
				},
				{
					Name:        "exemptions_applied_correctly",
					Description: "Exemptions applied correctly?",
					Pass:        "Any exemptions are clearly documented and justified.",
					Fail:        "Document any claimed exemptions and ensure they are valid under the OBPP rules.",
					Check:       requires(0.6, 0.0, exemptionPattern),
				},
				{
					Name:        "quarterly_upload_done",
					Description: "Quarterly upload done?",
					Pass:        "Quarterly uploads / records are maintained as required.",
					Fail:        "Ensure the campaign is recorded/uploaded in the quarterly compliance registry.",
					Check:       assume(false, 0.0),
				},
				{
					Name:        "no_games_or_prizes",
					Description: "No games or prizes?",
					Pass:        "No games or prizes included (or approvals exist).",
					Fail:        "Remove contests/games/prize mechanics unless specifically allowed and approved.",
					Check:       forbids(0.9, 0.7, gamesPrizesPattern),
				},
				{
					Name:        "retention_5y",
					Description: "Retention for 5 years?",
					Pass:        "Retention policy (5 years) is adhered to / documented.",
					Fail:        "Retain campaign artifacts for 5 years per OBPP; document retention location.",
					Check:       requires(0.8, 0.0, retentionPattern),
				},
				{
					Name:        "reapprovals_after_180d",
					Description: "Reapprovals after 180 days?",
					Pass:        "Re-approval workflow adhered after 180 days where required.",
					Fail:        "If >180 days since approval, re-seek approvals per policy.",
					Check:       requires(0.7, 0.0, reapprovalPattern),
				},
				{
					Name:        "medium_changes_ok",
					Description: "Medium changes compliant?",
					Pass:        "Medium-specific change rules respected (minor edits vs. re-approval).",
					Fail:        "Major changes to creative/medium may require fresh approvals; confirm and re-submit if needed.",
					Check:       assume(true, 0.5),
				},
				{
					Name:        "suspension_rules_followed",
					Description: "Suspension rules followed?",
					Pass:        "Suspension/withdrawal requirements followed where applicable.",
					Fail:        "Follow the suspension/withdrawal procedures if content is non-compliant post-deployment.",
					Check:       requires(0.6, 0.0, suspensionPattern),
				},
				{
					Name:        "third_party_action_compliant",
					Description: "Third-party actions compliant?",
					Pass:        "Third-party vendor/agency actions are compliant and documented.",
					Fail:        "Obtain compliance confirmations from third-party vendors/agencies and document them.",
					Check:       forbids(0.7, 0.4, thirdPartyPattern),
				},
				{
					Name:        "no_client_data_sharing",
					Description: "No unauthorized client data sharing?",
					Pass:        "No unauthorized client data sharing detected.",
					Fail:        "Remove or secure any flow that shares client data with third parties; follow privacy rules.",
					Check:       forbids(0.85, 0.4, clientDataPattern),
				},
				{
					Name:        "liabilities_disclaimed",
					Description: "Liabilities disclaimed?",
					Pass:        "Liability/disclaimer language present and adequate.",
					Fail:        "Add clear liability and disclaimer statements as per OBPP templates.",
					Check:       requires(0.8, 0.0, liabilitiesPattern),
				},
			},
		},
		{
			Name: "Penalties",
			Fields: []Field{
				{
					Name:        "penalty_awareness",
					Description: "Penalty awareness?",
					Pass:        "Penalty provisions acknowledged and internal controls exist.",
					Fail:        "Ensure the team documents penalty awareness and internal controls to avoid breaches.",
					Check:       assume(true, 0.3),
				},
			},
		},
	},
}
